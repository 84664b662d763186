// Package consolidate implements stage 4: merging every stage's output
// into scored records and rendering the final multi-sheet workbook.
package consolidate

import (
	"context"
	"log"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/config"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/pipeline"
)

// merge folds the verified and enriched company files into one record set,
// keyed by normalized name. Enriched rows take priority since they are the
// freshest; verified rows keep inactive companies in the final output.
func merge(enriched, verified []domain.Company) []domain.Company {
	byKey := map[string]*domain.Company{}
	var order []string

	add := func(list []domain.Company) {
		for _, c := range list {
			k := domain.Key(c.Name)
			if existing, ok := byKey[k]; ok {
				existing.Merge(c)
				continue
			}
			cc := c
			byKey[k] = &cc
			order = append(order, k)
		}
	}
	add(enriched)
	add(verified)

	out := make([]domain.Company, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	return out
}

// groupExecutives attaches executives to their companies by key.
func groupExecutives(execs []domain.Executive) map[string][]domain.Executive {
	byKey := map[string][]domain.Executive{}
	for _, e := range execs {
		byKey[e.CompanyKey] = append(byKey[e.CompanyKey], e)
	}
	return byKey
}

// Build merges inputs into ranked, scored records. Exposed separately from
// Run so the workbook can be rendered from in-memory data in tests.
func Build(cfg config.Config, enriched, verified []domain.Company, execs []domain.Executive) []Scored {
	companies := merge(enriched, verified)
	byKey := groupExecutives(execs)

	records := make([]Scored, 0, len(companies))
	for _, c := range companies {
		ex := byKey[domain.Key(c.Name)]
		q := score(c, ex, cfg)
		records = append(records, Scored{
			Company:      c,
			Executives:   ex,
			QualityScore: q,
			Opportunity:  q * hiringMultiplier(c.HiringStatus, cfg),
		})
	}
	rank(records)
	return records
}

// Run reads every stage output and writes the workbook. The verification
// output is required; enrichment output is optional so consolidation still
// works for a run where enrichment found nothing.
func Run(ctx context.Context, cfg config.Config, paths pipeline.Paths) (int, error) {
	verified, err := pipeline.ReadCompanies(paths.VerifiedCompanies(), "verify")
	if err != nil {
		return 0, err
	}

	enriched, err := pipeline.ReadCompanies(paths.EnrichedCompanies(), "enrich")
	if err != nil {
		if _, ok := err.(*pipeline.MissingInputError); !ok {
			return 0, err
		}
		log.Printf("[consolidate] no enrichment output, consolidating verification data only")
		enriched = nil
	}
	execs, err := pipeline.ReadExecutives(paths.Executives(), "enrich")
	if err != nil {
		if _, ok := err.(*pipeline.MissingInputError); !ok {
			return 0, err
		}
		execs = nil
	}

	records := Build(cfg, enriched, verified, execs)
	out := paths.Workbook(cfg.App.OutputName)
	if err := writeWorkbook(out, records, cfg); err != nil {
		return 0, err
	}

	log.Printf("[consolidate] wrote %s (%d companies, %d executives)", out, len(records), len(execs))
	return len(records), nil
}
