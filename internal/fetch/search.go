package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Searcher wraps DuckDuckGo HTML search. BaseURL is overridable for tests.
type Searcher struct {
	Client  *Client
	BaseURL string
}

func NewSearcher(c *Client) *Searcher {
	return &Searcher{Client: c, BaseURL: "https://duckduckgo.com/html/?q="}
}

// Result is one organic search hit.
type Result struct {
	URL  string
	Text string
}

func (s *Searcher) Search(ctx context.Context, query string) ([]Result, error) {
	res, err := s.Client.Get(ctx, s.BaseURL+url.QueryEscape(query))
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("search parse: %w", err)
	}

	var out []Result
	doc.Find("a.result__a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		out = append(out, Result{
			URL:  decodeRedirect(href),
			Text: CleanText(a.Text()),
		})
	})
	return out, nil
}

// FindCompanyDomain returns the first plausible official-site hostname for
// a company, skipping job boards and directories.
func (s *Searcher) FindCompanyDomain(ctx context.Context, company string) (string, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return "", nil
	}

	query := fmt.Sprintf("%s official website", SanitizeCompanyForSearch(company))
	results, err := s.Search(ctx, query)
	if err != nil {
		return "", err
	}

	for _, r := range results {
		host := DomainFromURL(r.URL)
		if host == "" || isBlockedDomain(host) {
			continue
		}
		return host, nil
	}
	return "", nil
}

func decodeRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	// DDG sometimes uses /l/?uddg=<urlencoded>
	if uddg := u.Query().Get("uddg"); uddg != "" {
		if dec, err := url.QueryUnescape(uddg); err == nil && dec != "" {
			return dec
		}
	}
	return href
}

var domainBlocklist = []string{
	"linkedin.com",
	"indeed.com",
	"glassdoor.com",
	"seek.com.au",
	"seek.co.nz",
	"crunchbase.com",
	"wikipedia.org",
	"facebook.com",
	"bloomberg.com",
	"afr.com",
	"ibisworld.com",
	"kompass.com",
}

func isBlockedDomain(host string) bool {
	for _, b := range domainBlocklist {
		if host == b || strings.HasSuffix(host, "."+b) {
			return true
		}
	}
	return false
}
