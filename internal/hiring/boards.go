package hiring

import (
	"context"
	"net/url"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/fetch"
)

// checkBoard runs one job-board search (LinkedIn Jobs or Seek) for a
// company and matches role keywords in the result page.
func (ch *Checker) checkBoard(ctx context.Context, searchURL string) (tags []string, ok bool) {
	doc, err := ch.fetchDoc(ctx, searchURL)
	if err != nil {
		return nil, false
	}
	return matchRoles(doc.Text(), ch.cfg.Hiring.Roles), true
}

func (ch *Checker) linkedInSearchURL(company string) string {
	return ch.cfg.Hiring.LinkedInURL + url.QueryEscape(company)
}

func (ch *Checker) seekSearchURL(c domain.Company) string {
	base := ch.cfg.Hiring.SeekAUURL
	if c.Country == "New Zealand" {
		base = ch.cfg.Hiring.SeekNZURL
	}
	return base + url.QueryEscape(fetch.SlugifyCompany(c.Name))
}
