package hiring

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/fetch"
)

// checkCareersPage walks the configured careers paths on a company site,
// matching role keywords in the page text and in a handful of linked job
// pages. Returns matched tags, the URLs they were found at, and whether
// any page was reachable at all.
func (ch *Checker) checkCareersPage(ctx context.Context, website string) (tags []string, sources []string, reachable bool) {
	base := fetch.NormalizeWebsite(website)
	if base == "" {
		return nil, nil, false
	}

	for _, path := range ch.cfg.Hiring.CareerPaths {
		if allMatched(tags, ch.cfg.Hiring.Roles) {
			break
		}

		pageURL := fetch.JoinPath(base, path)
		doc, err := ch.fetchDoc(ctx, pageURL)
		if err != nil {
			continue
		}
		reachable = true

		if hit := matchRoles(doc.Text(), ch.cfg.Hiring.Roles); len(hit) > 0 {
			tags = mergeTags(tags, hit)
			sources = append(sources, pageURL)
		}

		// follow a few listing links off the careers page
		for _, link := range jobLinks(doc, pageURL, ch.cfg.Hiring.MaxJobLinks) {
			if allMatched(tags, ch.cfg.Hiring.Roles) {
				break
			}
			jobDoc, err := ch.fetchDoc(ctx, link)
			if err != nil {
				continue
			}
			if hit := matchRoles(jobDoc.Text(), ch.cfg.Hiring.Roles); len(hit) > 0 {
				tags = mergeTags(tags, hit)
				sources = append(sources, link)
			}
		}
	}

	return tags, sources, reachable
}

func (ch *Checker) fetchDoc(ctx context.Context, url string) (*goquery.Document, error) {
	res, err := ch.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	return goquery.NewDocumentFromReader(res.Body)
}

// jobLinks collects anchors that look like job listings, resolved against base.
func jobLinks(doc *goquery.Document, base string, max int) []string {
	var out []string
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		text := strings.ToLower(fetch.CleanText(a.Text()))
		if text == "" {
			return true
		}
		hit := false
		for _, word := range []string{"job", "career", "position", "vacancy", "role"} {
			if strings.Contains(text, word) {
				hit = true
				break
			}
		}
		if !hit {
			return true
		}

		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") {
			return true
		}
		resolved := resolveLink(base, href)
		if resolved == "" {
			return true
		}
		out = append(out, resolved)
		return len(out) < max
	})
	return out
}

// resolveLink resolves href against the page URL, so "/jobs/1" lands on the
// site root and "1" stays relative to the page.
func resolveLink(page, href string) string {
	base, err := url.Parse(page)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	u := base.ResolveReference(ref)
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}
