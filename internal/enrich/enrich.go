// Package enrich implements stage 3: finding technology executives at the
// companies worth pursuing and attaching contact details with an honest
// confidence score.
package enrich

import (
	"context"
	"database/sql"
	"log"
	"sort"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/config"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/fetch"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/pipeline"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/store"
)

type Enricher struct {
	cfg      config.Config
	client   *fetch.Client
	searcher *fetch.Searcher
	db       *sql.DB
	verifier *VerifierClient
}

func NewEnricher(cfg config.Config, client *fetch.Client, searcher *fetch.Searcher, db *sql.DB, verifier *VerifierClient) *Enricher {
	return &Enricher{cfg: cfg, client: client, searcher: searcher, db: db, verifier: verifier}
}

func (e *Enricher) fetchDoc(ctx context.Context, url string) (*goquery.Document, error) {
	res, err := e.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	return goquery.NewDocumentFromReader(res.Body)
}

// companyDomain resolves the email domain for a company: website URL first,
// then the cache, then a web search whose answer is cached for next time.
func (e *Enricher) companyDomain(ctx context.Context, c domain.Company) string {
	if d := fetch.DomainFromURL(fetch.NormalizeWebsite(c.Website)); d != "" {
		return d
	}
	if e.db != nil {
		if d, err := store.GetCompanyDomain(ctx, e.db, c.Name); err == nil && d != "" {
			return d
		}
	}
	if e.searcher == nil {
		return ""
	}
	d, err := e.searcher.FindCompanyDomain(ctx, c.Name)
	if err != nil || d == "" {
		return ""
	}
	if e.db != nil {
		if err := store.UpsertCompanyDomain(ctx, e.db, c.Name, d); err != nil {
			log.Printf("[enrich] cache domain %s: %v", c.Name, err)
		}
	}
	return d
}

// EnrichCompany finds executives for one company and fills in contact
// details. A company where nothing was found yields an empty slice, never
// invented contacts.
func (e *Enricher) EnrichCompany(ctx context.Context, c domain.Company) []domain.Executive {
	execs := mergeExecutives(
		e.findLeadershipExecutives(ctx, c),
		e.findProfileExecutives(ctx, c),
	)
	if len(execs) == 0 {
		return nil
	}

	emailDomain := e.companyDomain(ctx, c)
	for i := range execs {
		ex := &execs[i]
		ex.Verified = domain.VerifyNone
		if emailDomain == "" {
			continue
		}
		first, last := splitName(ex.Name)
		email := GenerateEmail(first, last, emailDomain, e.cfg.Enrich.EmailPattern)
		if email == "" {
			continue
		}
		ex.Email = email
		ex.Confidence, ex.Verified = e.emailConfidence(ctx, email, emailDomain)
	}
	return execs
}

// Run reads the verified companies, enriches the ones still worth
// contacting, and writes the enriched companies and executives files.
// Companies marked inactive are dropped here.
func Run(ctx context.Context, e *Enricher, paths pipeline.Paths) (int, error) {
	companies, err := pipeline.ReadCompanies(paths.VerifiedCompanies(), "verify")
	if err != nil {
		return 0, err
	}

	var targets []domain.Company
	for _, c := range companies {
		if c.HiringStatus == domain.HiringInactive {
			continue
		}
		targets = append(targets, c)
	}
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].CompanySize > targets[j].CompanySize
	})
	if max := e.cfg.Enrich.MaxCompanies; len(targets) > max {
		targets = targets[:max]
	}

	results := make([][]domain.Executive, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Enrich.Workers)
	for i := range targets {
		g.Go(func() error {
			results[i] = e.EnrichCompany(gctx, targets[i])
			return nil
		})
	}
	_ = g.Wait()

	today := time.Now().UTC().Format("2006-01-02")
	var execs []domain.Executive
	for i := range targets {
		targets[i].LastVerified = today
		execs = append(execs, results[i]...)
		log.Printf("[enrich] %s: %d executives", targets[i].Name, len(results[i]))
	}

	if err := pipeline.WriteCompanies(paths.EnrichedCompanies(), targets); err != nil {
		return 0, err
	}
	if err := pipeline.WriteExecutives(paths.Executives(), execs); err != nil {
		return 0, err
	}
	log.Printf("[enrich] %d companies enriched, %d executives found", len(targets), len(execs))
	return len(targets), nil
}
