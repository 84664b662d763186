// Package hiring implements stage 2: checking each discovered company's
// public job surfaces for the target role families and rolling the matches
// up into a hiring status.
package hiring

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/config"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/fetch"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/pipeline"
)

type Checker struct {
	cfg    config.Config
	client *fetch.Client
}

func NewChecker(cfg config.Config, client *fetch.Client) *Checker {
	return &Checker{cfg: cfg, client: client}
}

// Result is the outcome of the per-company source ladder.
type Result struct {
	Status  domain.HiringStatus
	Roles   []string
	Sources []string
}

// Check runs the ladder for one company: careers page, then LinkedIn jobs,
// then Seek. Stops early once every role family has matched. A company
// where every surface failed outright is unknown, never inactive.
func (ch *Checker) Check(ctx context.Context, c domain.Company) Result {
	var (
		tags      []string
		sources   []string
		succeeded bool
	)

	careerTags, careerSrcs, reachable := ch.checkCareersPage(ctx, c.Website)
	tags = mergeTags(tags, careerTags)
	sources = append(sources, careerSrcs...)
	succeeded = succeeded || reachable

	if !allMatched(tags, ch.cfg.Hiring.Roles) {
		u := ch.linkedInSearchURL(c.Name)
		if hit, ok := ch.checkBoard(ctx, u); ok {
			succeeded = true
			if len(hit) > 0 {
				tags = mergeTags(tags, hit)
				sources = append(sources, u)
			}
		}
	}

	if !allMatched(tags, ch.cfg.Hiring.Roles) {
		u := ch.seekSearchURL(c)
		if hit, ok := ch.checkBoard(ctx, u); ok {
			succeeded = true
			if len(hit) > 0 {
				tags = mergeTags(tags, hit)
				sources = append(sources, u)
			}
		}
	}

	switch {
	case len(tags) > 0:
		return Result{Status: domain.HiringActive, Roles: tags, Sources: sources}
	case succeeded:
		return Result{Status: domain.HiringInactive}
	default:
		return Result{Status: domain.HiringUnknown}
	}
}

// Run reads the discovery output, checks every company with a bounded
// worker pool, and writes the verified companies file.
func Run(ctx context.Context, cfg config.Config, client *fetch.Client, paths pipeline.Paths) (int, error) {
	companies, err := pipeline.ReadCompanies(paths.RawCompanies(), "discover")
	if err != nil {
		return 0, err
	}

	checker := NewChecker(cfg, client)
	results := make([]Result, len(companies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Hiring.Workers)
	for i := range companies {
		g.Go(func() error {
			results[i] = checker.Check(gctx, companies[i])
			return nil
		})
	}
	_ = g.Wait()

	today := time.Now().UTC().Format("2006-01-02")
	active := 0
	for i := range companies {
		c := &companies[i]
		r := results[i]

		c.HiringStatus = r.Status
		for _, role := range r.Roles {
			c.AddOpenRole(role)
		}
		for _, src := range r.Sources {
			c.AddSourceRef(src)
		}
		c.LastVerified = today

		if r.Status == domain.HiringActive {
			active++
		}
		log.Printf("[verify] %s: %s (roles=%d)", c.Name, r.Status, len(r.Roles))
	}

	if err := pipeline.WriteCompanies(paths.VerifiedCompanies(), companies); err != nil {
		return 0, err
	}
	log.Printf("[verify] checked %d companies, %d actively hiring", len(companies), active)
	return len(companies), nil
}
