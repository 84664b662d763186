package enrich

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/fetch"
)

// techTitles are the decision-maker roles worth contacting, in priority order.
var techTitles = []string{
	"chief technology officer", "cto",
	"chief information officer", "cio",
	"chief digital officer", "cdo",
	"vp of engineering", "vp of technology",
	"head of technology", "head of engineering",
	"director of technology", "director of it",
}

var reFullName = regexp.MustCompile(`([A-Z][a-z]+ [A-Z][a-z]+)`)

// findLeadershipExecutives scans common leadership-page paths on the
// company site for technology executive names and titles.
func (e *Enricher) findLeadershipExecutives(ctx context.Context, c domain.Company) []domain.Executive {
	base := fetch.NormalizeWebsite(c.Website)
	if base == "" {
		return nil
	}
	key := domain.Key(c.Name)

	for _, path := range e.cfg.Enrich.LeadershipPaths {
		pageURL := fetch.JoinPath(base, path)
		doc, err := e.fetchDoc(ctx, pageURL)
		if err != nil {
			continue
		}

		pageText := strings.ToLower(doc.Text())
		hasLeadership := false
		for _, term := range []string{"leadership", "management", "executive", "team", "board"} {
			if strings.Contains(pageText, term) {
				hasLeadership = true
				break
			}
		}
		if !hasLeadership {
			continue
		}

		execs := extractExecutives(doc, key, pageURL)
		if len(execs) > 0 {
			return execs
		}
	}
	return nil
}

func extractExecutives(doc *goquery.Document, companyKey, pageURL string) []domain.Executive {
	var out []domain.Executive
	seen := map[string]bool{}

	doc.Find("h1, h2, h3, h4, h5, h6, p, li, div").Each(func(_ int, sel *goquery.Selection) {
		// only look at leaf-ish elements so one name isn't captured per ancestor
		if sel.Children().Length() > 3 {
			return
		}
		text := joinedText(sel)
		if text == "" || len(text) > 200 {
			return
		}

		title := matchTechTitle(text)
		if title == "" {
			return
		}
		name := reFullName.FindString(text)
		if name == "" || seen[strings.ToLower(name)] {
			return
		}
		seen[strings.ToLower(name)] = true

		out = append(out, domain.Executive{
			CompanyKey: companyKey,
			Name:       name,
			Title:      title,
			Phone:      extractPhone(text),
			Source:     pageURL,
		})
	})
	return out
}

// joinedText flattens an element's text with spaces between children, so
// a card like <h3>Name</h3><p>Title</p> doesn't run the words together.
func joinedText(sel *goquery.Selection) string {
	var parts []string
	sel.Contents().Each(func(_ int, n *goquery.Selection) {
		if t := fetch.CleanText(n.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, " ")
}

func matchTechTitle(text string) string {
	low := strings.ToLower(text)
	for _, t := range techTitles {
		if containsWord(low, t) {
			return titleCase(t)
		}
	}
	return ""
}

// containsWord avoids "cto" matching inside "director" etc.
func containsWord(text, word string) bool {
	i := strings.Index(text, word)
	if i < 0 {
		return false
	}
	before := i == 0 || !isLetter(text[i-1])
	afterIdx := i + len(word)
	after := afterIdx >= len(text) || !isLetter(text[afterIdx])
	return before && after
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func titleCase(s string) string {
	if len(s) <= 3 {
		return strings.ToUpper(s) // CTO, CIO, CDO
	}
	words := strings.Fields(s)
	for i, w := range words {
		switch w {
		case "of", "it":
			if w == "it" {
				words[i] = "IT"
			}
		default:
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// findProfileExecutives searches the web for LinkedIn profiles matching the
// company and a technology title.
func (e *Enricher) findProfileExecutives(ctx context.Context, c domain.Company) []domain.Executive {
	if e.searcher == nil {
		return nil
	}
	key := domain.Key(c.Name)

	query := `site:linkedin.com/in "` + fetch.SanitizeCompanyForSearch(c.Name) +
		`" ("CTO" OR "Chief Technology Officer" OR "CIO" OR "Head of Technology")`
	results, err := e.searcher.Search(ctx, query)
	if err != nil {
		return nil
	}

	var out []domain.Executive
	seen := map[string]bool{}
	for _, r := range results {
		if !strings.Contains(strings.ToLower(r.URL), "linkedin.com/in/") {
			continue
		}
		name := reFullName.FindString(r.Text)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		title := matchTechTitle(r.Text)
		if title == "" {
			title = "Technology Executive"
		}
		seen[strings.ToLower(name)] = true
		out = append(out, domain.Executive{
			CompanyKey:  key,
			Name:        name,
			Title:       title,
			LinkedInURL: r.URL,
			Source:      "LinkedIn via web search",
		})
	}
	return out
}

// mergeExecutives prefers leadership-page hits, which carry exact titles
// and phone numbers; profile hits fill in names not found there and
// contribute LinkedIn URLs for duplicates.
func mergeExecutives(leadership, profile []domain.Executive) []domain.Executive {
	out := append([]domain.Executive(nil), leadership...)
	for _, pe := range profile {
		dup := false
		for i := range out {
			if strings.EqualFold(out[i].Name, pe.Name) {
				if out[i].LinkedInURL == "" {
					out[i].LinkedInURL = pe.LinkedInURL
				}
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, pe)
		}
	}
	return out
}
