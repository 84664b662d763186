package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
)

// Confidence levels for generated emails. A pattern guess with no
// corroboration stays low; an MX record for the domain raises it; a
// positive answer from a verification service raises it further.
const (
	confPattern  = 0.4
	confMX       = 0.8
	confVerified = 0.95
)

// GenerateEmail builds an address for first/last at domain using one of the
// supported patterns. Unknown patterns fall back to first.last.
func GenerateEmail(first, last, emailDomain, pattern string) string {
	first = strings.ToLower(strings.TrimSpace(first))
	last = strings.ToLower(strings.TrimSpace(last))
	if first == "" || last == "" || emailDomain == "" {
		return ""
	}

	var local string
	switch pattern {
	case "firstlast":
		local = first + last
	case "first_last":
		local = first + "_" + last
	case "flast":
		local = first[:1] + last
	case "first.l":
		local = first + "." + last[:1]
	case "f.last":
		local = first[:1] + "." + last
	default: // first.last
		local = first + "." + last
	}
	return local + "@" + emailDomain
}

// splitName returns the first and last word of a full name.
func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return "", ""
	}
	return parts[0], parts[len(parts)-1]
}

// hasMX reports whether the domain publishes any MX record.
func hasMX(ctx context.Context, emailDomain string) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	mx, err := net.DefaultResolver.LookupMX(ctx, emailDomain)
	return err == nil && len(mx) > 0
}

// VerifierClient talks to an optional external email verification service.
// The key is stored in the OS keyring, never in config.
type VerifierClient struct {
	URL string
	Key string

	hc *http.Client
}

func NewVerifierClient(serviceURL, key string) *VerifierClient {
	return &VerifierClient{
		URL: serviceURL,
		Key: key,
		hc:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify asks the service whether the address is deliverable.
func (v *VerifierClient) Verify(ctx context.Context, email string) (bool, error) {
	u := v.URL + "?email=" + url.QueryEscape(email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+v.Key)
	req.Header.Set("Accept", "application/json")

	res, err := v.hc.Do(req)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return false, fmt.Errorf("verifier: status %d for %s", res.StatusCode, email)
	}

	var body struct {
		Deliverable bool `json:"deliverable"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return false, err
	}
	return body.Deliverable, nil
}

// emailConfidence scores a generated address. MX presence is checked first;
// the verifier service (when configured) can upgrade an MX-backed address.
func (e *Enricher) emailConfidence(ctx context.Context, email, emailDomain string) (float64, domain.Verification) {
	if !hasMX(ctx, emailDomain) {
		return confPattern, domain.VerifyNone
	}
	if e.verifier != nil {
		ok, err := e.verifier.Verify(ctx, email)
		if err == nil && ok {
			return confVerified, domain.VerifyService
		}
	}
	return confMX, domain.VerifyMX
}
