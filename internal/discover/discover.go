// Package discover seeds the pipeline: it gathers candidate companies from
// the configured reference sources, dedupes them by normalized name, and
// writes the stage-1 companies file.
package discover

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/fetch"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/pipeline"
)

// Run fetches every source in order and writes the merged result.
// A failing source is logged and skipped; partial output still counts.
func Run(ctx context.Context, sources []Source, paths pipeline.Paths) (int, error) {
	var batches [][]domain.Company
	for _, src := range sources {
		companies, err := src.Fetch(ctx)
		if err != nil {
			log.Printf("[discover] source %s failed, skipping: %v", src.Name(), err)
			continue
		}
		log.Printf("[discover] source %s yielded %d companies", src.Name(), len(companies))
		batches = append(batches, companies)
	}

	merged := merge(batches)
	if len(merged) == 0 {
		return 0, fmt.Errorf("no discovery source produced any companies")
	}

	today := time.Now().UTC().Format("2006-01-02")
	for i := range merged {
		fillDefaults(&merged[i], today)
	}

	if err := pipeline.WriteCompanies(paths.RawCompanies(), merged); err != nil {
		return 0, err
	}
	log.Printf("[discover] wrote %d companies to %s", len(merged), paths.RawCompanies())
	return len(merged), nil
}

// merge dedupes by normalized name. Earlier batches win scalar fields
// (source order is priority order); later batches only fill blanks and
// contribute source refs.
func merge(batches [][]domain.Company) []domain.Company {
	byKey := map[string]*domain.Company{}
	var order []string

	for _, batch := range batches {
		for _, c := range batch {
			if strings.TrimSpace(c.Name) == "" {
				continue
			}
			key := domain.Key(c.Name)
			if existing, ok := byKey[key]; ok {
				existing.Merge(c)
				continue
			}
			cp := c
			byKey[key] = &cp
			order = append(order, key)
		}
	}

	out := make([]domain.Company, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out
}

func fillDefaults(c *domain.Company, today string) {
	if c.HiringStatus == "" {
		c.HiringStatus = domain.HiringUnknown
	}
	if c.LastVerified == "" {
		c.LastVerified = today
	}
	if c.Website == "" {
		c.Website = "https://www." + strings.ReplaceAll(strings.ToLower(strings.TrimSpace(c.Name)), " ", "") + ".com"
	}
	if c.LinkedInURL == "" {
		c.LinkedInURL = "https://www.linkedin.com/company/" + fetch.SlugifyCompany(c.Name)
	}
}
