package discover

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/config"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/fetch"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/pipeline"
)

func TestMergeFirstSourceWins(t *testing.T) {
	batches := [][]domain.Company{
		{
			{Name: "QBE Insurance Group", Country: "Australia", MarketCap: "AUD 25B", SourceRefs: []string{"ASX 200"}},
		},
		{
			{Name: "QBE Insurance Group Limited", Country: "New Zealand", Website: "qbe.com", SourceRefs: []string{"Industry associations"}},
			{Name: "Tower Limited", Country: "New Zealand", SourceRefs: []string{"Industry associations"}},
		},
	}
	out := merge(batches)
	require.Len(t, out, 2, "name variants collapse to one record")

	qbe := out[0]
	assert.Equal(t, "QBE Insurance Group", qbe.Name, "first source names the record")
	assert.Equal(t, "Australia", qbe.Country, "first source wins on conflict")
	assert.Equal(t, "qbe.com", qbe.Website, "later source fills blanks")
	assert.Equal(t, []string{"ASX 200", "Industry associations"}, qbe.SourceRefs)
}

func TestMergeSkipsBlankNames(t *testing.T) {
	out := merge([][]domain.Company{{{Name: "  "}, {Name: "Tower"}}})
	require.Len(t, out, 1)
	assert.Equal(t, "Tower", out[0].Name)
}

func TestFillDefaults(t *testing.T) {
	c := domain.Company{Name: "Tower Limited"}
	fillDefaults(&c, "2026-08-28")
	assert.Equal(t, domain.HiringUnknown, c.HiringStatus)
	assert.Equal(t, "2026-08-28", c.LastVerified)
	assert.Equal(t, "https://www.towerlimited.com", c.Website)
	assert.Equal(t, "https://www.linkedin.com/company/tower-limited", c.LinkedInURL)
}

func TestBuildSourcesPriorityOrder(t *testing.T) {
	cfg := config.Default()
	cfg.Discovery.Sources = []string{"apra", "asx", "bogus"}
	sources := BuildSources(cfg, nil)
	require.Len(t, sources, 2, "unknown sources dropped")
	assert.Equal(t, "apra", sources[0].Name())
	assert.Equal(t, "asx", sources[1].Name())
}

func TestRunSeedsOnly(t *testing.T) {
	cfg := config.Default()
	paths := pipeline.Paths{DataDir: t.TempDir()}
	require.NoError(t, paths.EnsureDirs())

	n, err := Run(context.Background(), BuildSources(cfg, nil), paths)
	require.NoError(t, err)
	assert.Greater(t, n, 30, "all five seed tables contribute")

	out, err := pipeline.ReadCompanies(paths.RawCompanies(), "discover")
	require.NoError(t, err)
	assert.Len(t, out, n)

	seen := map[string]bool{}
	for _, c := range out {
		k := domain.Key(c.Name)
		assert.False(t, seen[k], "duplicate key %q", k)
		seen[k] = true
		assert.NotEmpty(t, c.Website)
		assert.NotEmpty(t, c.HiringStatus)
		assert.NotEmpty(t, c.SourceRefs)
	}
}

type failingSource struct{}

func (failingSource) Name() string                                     { return "failing" }
func (failingSource) Fetch(context.Context) ([]domain.Company, error) { return nil, errors.New("boom") }

func TestRunSkipsFailingSource(t *testing.T) {
	paths := pipeline.Paths{DataDir: t.TempDir()}
	require.NoError(t, paths.EnsureDirs())

	sources := []Source{
		failingSource{},
		seedSource{name: "apra", ref: "APRA register", seed: apraSeed},
	}
	n, err := Run(context.Background(), sources, paths)
	require.NoError(t, err)
	assert.Equal(t, len(apraSeed), n)
}

func TestRunFailsWhenAllSourcesEmpty(t *testing.T) {
	paths := pipeline.Paths{DataDir: t.TempDir()}
	require.NoError(t, paths.EnsureDirs())

	_, err := Run(context.Background(), []Source{failingSource{}}, paths)
	assert.Error(t, err)
}

func TestExchangeSourceLiveScrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<table>
<tr><th>Company</th><th>Market cap</th></tr>
<tr><td>Example Insurance Holdings</td><td>AUD 2B</td><td>Insurance</td></tr>
<tr><td>Example Mining</td><td>AUD 9B</td><td>Materials</td></tr>
<tr><td>Example Bank</td><td>AUD 5B</td><td>Banking and finance</td></tr>
</table>`)
	}))
	defer srv.Close()

	src := &exchangeSource{
		name: "asx", ref: "ASX 200", seed: asxSeed, country: "Australia",
		client:  fetch.NewClient(fetch.NewHostLimiter(100, 10)),
		liveURL: srv.URL,
	}
	out, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2, "non-financial rows filtered out")
	assert.Equal(t, "Example Insurance Holdings", out[0].Name)
	assert.Equal(t, domain.IndustryInsurance, out[0].Industry)
	assert.Equal(t, "AUD 2B", out[0].MarketCap)
	assert.Equal(t, domain.IndustryFinance, out[1].Industry)
}

func TestExchangeSourceFallsBackToSeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<p>no table here</p>`)
	}))
	defer srv.Close()

	src := &exchangeSource{
		name: "nzx", ref: "NZX 50", seed: nzxSeed, country: "New Zealand",
		client:  fetch.NewClient(fetch.NewHostLimiter(100, 10)),
		liveURL: srv.URL,
	}
	out, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, len(nzxSeed))
}

func TestExchangeSourceFallsBackToSeedOnFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := &exchangeSource{
		name: "asx", ref: "ASX 200", seed: asxSeed, country: "Australia",
		client:  fetch.NewClient(fetch.NewHostLimiter(100, 10)),
		liveURL: srv.URL,
	}
	out, err := src.Fetch(context.Background())
	require.NoError(t, err, "a dead listing page must not drop the source")
	require.Len(t, out, len(asxSeed))
	assert.Equal(t, []string{"ASX 200"}, out[0].SourceRefs)
}
