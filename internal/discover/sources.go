package discover

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/config"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/fetch"
)

// Source yields candidate companies from one reference surface.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Company, error)
}

// BuildSources assembles sources in config priority order. Unknown names
// are dropped here; validation already warned about them.
func BuildSources(cfg config.Config, client *fetch.Client) []Source {
	var out []Source
	for _, name := range cfg.Discovery.Sources {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "asx":
			out = append(out, &exchangeSource{
				name: "asx", ref: "ASX 200", seed: asxSeed, client: client,
				liveURL: liveURL(cfg, cfg.Discovery.ASXURL), country: "Australia",
			})
		case "nzx":
			out = append(out, &exchangeSource{
				name: "nzx", ref: "NZX 50", seed: nzxSeed, client: client,
				liveURL: liveURL(cfg, cfg.Discovery.NZXURL), country: "New Zealand",
			})
		case "apra":
			out = append(out, seedSource{name: "apra", ref: "APRA register", seed: apraSeed})
		case "rbnz":
			out = append(out, seedSource{name: "rbnz", ref: "RBNZ register", seed: rbnzSeed})
		case "associations":
			out = append(out, seedSource{name: "associations", ref: "Industry associations", seed: associationsSeed})
		}
	}
	return out
}

func liveURL(cfg config.Config, u string) string {
	if !cfg.Discovery.LiveExchange {
		return ""
	}
	return strings.TrimSpace(u)
}

// seedSource serves a built-in reference table.
type seedSource struct {
	name string
	ref  string
	seed []domain.Company
}

func (s seedSource) Name() string { return s.name }

func (s seedSource) Fetch(_ context.Context) ([]domain.Company, error) {
	out := make([]domain.Company, len(s.seed))
	copy(out, s.seed)
	for i := range out {
		out[i].SourceRefs = []string{s.ref}
	}
	return out, nil
}

// exchangeSource scrapes a listing directory page when a live URL is
// configured, falling back to its seed when the scrape fails or finds
// nothing usable.
type exchangeSource struct {
	name    string
	ref     string
	seed    []domain.Company
	client  *fetch.Client
	liveURL string
	country string
}

func (s *exchangeSource) Name() string { return s.name }

func (s *exchangeSource) Fetch(ctx context.Context) ([]domain.Company, error) {
	if s.liveURL != "" {
		live, err := s.fetchListing(ctx)
		if err != nil {
			log.Printf("[discover] %s listing fetch failed, using seed: %v", s.name, err)
		} else if len(live) > 0 {
			return live, nil
		}
	}
	return seedSource{name: s.name, ref: s.ref, seed: s.seed}.Fetch(ctx)
}

func (s *exchangeSource) fetchListing(ctx context.Context) ([]domain.Company, error) {
	res, err := s.client.Get(ctx, s.liveURL)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("parse listing html: %w", err)
	}

	var out []domain.Company
	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 1 {
			return
		}
		name := fetch.CleanText(cells.Eq(0).Text())
		if name == "" || !looksFinancial(name, fetch.CleanText(tr.Text())) {
			return
		}
		c := domain.Company{
			Name:       name,
			Industry:   classifyIndustry(fetch.CleanText(tr.Text())),
			Country:    s.country,
			SourceRefs: []string{s.ref},
		}
		if cells.Length() >= 2 {
			c.MarketCap = fetch.CleanText(cells.Eq(1).Text())
		}
		out = append(out, c)
	})
	return out, nil
}

func looksFinancial(name, rowText string) bool {
	blob := strings.ToLower(name + " " + rowText)
	for _, kw := range []string{
		"bank", "insurance", "insurer", "financial", "finance",
		"capital", "wealth", "assurance",
	} {
		if strings.Contains(blob, kw) {
			return true
		}
	}
	return false
}

func classifyIndustry(rowText string) domain.Industry {
	blob := strings.ToLower(rowText)
	ins := strings.Contains(blob, "insurance") || strings.Contains(blob, "insurer") || strings.Contains(blob, "assurance")
	fin := strings.Contains(blob, "bank") || strings.Contains(blob, "finance") || strings.Contains(blob, "financial")
	switch {
	case ins && fin:
		return domain.IndustryBoth
	case ins:
		return domain.IndustryInsurance
	default:
		return domain.IndustryFinance
	}
}
