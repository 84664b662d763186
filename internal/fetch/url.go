package fetch

import (
	"net/url"
	"strings"
)

// NormalizeWebsite makes a bare domain fetchable: adds https://, keeps full URLs.
func NormalizeWebsite(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return raw
}

// DomainFromURL extracts the bare hostname (www. stripped) from a URL or domain.
func DomainFromURL(raw string) string {
	raw = NormalizeWebsite(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Host)
	host = strings.TrimPrefix(host, "www.")
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return host
}

// JoinPath appends a path to a base URL, tolerating trailing/leading slashes.
func JoinPath(base, path string) string {
	base = strings.TrimRight(NormalizeWebsite(base), "/")
	if path == "" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
