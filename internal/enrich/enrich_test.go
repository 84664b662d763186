package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/config"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/fetch"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/pipeline"
)

func TestGenerateEmail(t *testing.T) {
	cases := []struct {
		pattern, want string
	}{
		{"first.last", "jane.citizen@qbe.com"},
		{"firstlast", "janecitizen@qbe.com"},
		{"first_last", "jane_citizen@qbe.com"},
		{"flast", "jcitizen@qbe.com"},
		{"first.l", "jane.c@qbe.com"},
		{"f.last", "j.citizen@qbe.com"},
		{"bogus", "jane.citizen@qbe.com"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, GenerateEmail("Jane", "Citizen", "qbe.com", c.pattern), "pattern %s", c.pattern)
	}
	assert.Equal(t, "", GenerateEmail("", "Citizen", "qbe.com", "first.last"))
	assert.Equal(t, "", GenerateEmail("Jane", "Citizen", "", "first.last"))
}

func TestSplitName(t *testing.T) {
	first, last := splitName("Jane Citizen")
	assert.Equal(t, "Jane", first)
	assert.Equal(t, "Citizen", last)

	first, last = splitName("Jane van der Berg")
	assert.Equal(t, "Jane", first)
	assert.Equal(t, "Berg", last)

	first, last = splitName("Mononym")
	assert.Equal(t, "", first)
	assert.Equal(t, "", last)
}

func TestExtractPhone(t *testing.T) {
	assert.Equal(t, "+61 2 9375 4444", extractPhone("Call us on +61 2 9375 4444 today"))
	assert.Equal(t, "+64 9 300 1234", extractPhone("NZ office: +64 9 300 1234"))
	assert.Equal(t, "(02) 9375 4444", extractPhone("Sydney (02) 9375 4444"))
	assert.Equal(t, "", extractPhone("no numbers here"))
}

func TestMatchTechTitle(t *testing.T) {
	assert.Equal(t, "CTO", matchTechTitle("Jane Citizen, CTO"))
	assert.Equal(t, "Chief Technology Officer", matchTechTitle("Jane Citizen - Chief Technology Officer"))
	assert.Equal(t, "Head of Technology", matchTechTitle("our head of technology"))
	assert.Equal(t, "", matchTechTitle("Director of Claims"), "cto inside director must not match")
	assert.Equal(t, "", matchTechTitle("Chief Executive Officer"))
}

func TestExtractExecutivesFromLeadershipPage(t *testing.T) {
	html := `<html><body>
<h1>Our Leadership Team</h1>
<div><h3>Jane Citizen</h3><p>Jane Citizen is our Chief Technology Officer. Phone +61 2 9375 4444.</p></div>
<div><h3>John Smith</h3><p>John Smith, Chief Financial Officer</p></div>
<li>Mary Jones - Head of Technology</li>
</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	execs := extractExecutives(doc, "example", "https://example.com/about/leadership")
	require.Len(t, execs, 2, "CFO is not a technology contact")

	assert.Equal(t, "Jane Citizen", execs[0].Name)
	assert.Equal(t, "Chief Technology Officer", execs[0].Title)
	assert.Equal(t, "+61 2 9375 4444", execs[0].Phone)
	assert.Equal(t, "example", execs[0].CompanyKey)

	assert.Equal(t, "Mary Jones", execs[1].Name)
	assert.Equal(t, "Head of Technology", execs[1].Title)
}

func TestMergeExecutivesPrefersLeadershipPage(t *testing.T) {
	leadership := []domain.Executive{
		{Name: "Jane Citizen", Title: "Chief Technology Officer", Phone: "+61 2 9375 4444"},
	}
	profile := []domain.Executive{
		{Name: "jane citizen", Title: "CTO", LinkedInURL: "https://www.linkedin.com/in/jane"},
		{Name: "Mary Jones", Title: "CIO", LinkedInURL: "https://www.linkedin.com/in/mary"},
	}
	out := mergeExecutives(leadership, profile)
	require.Len(t, out, 2)
	assert.Equal(t, "Chief Technology Officer", out[0].Title, "leadership record kept for duplicate names")
	assert.Equal(t, "+61 2 9375 4444", out[0].Phone)
	assert.Equal(t, "https://www.linkedin.com/in/jane", out[0].LinkedInURL, "profile fills the LinkedIn URL")
	assert.Equal(t, "Mary Jones", out[1].Name)
}

func TestVerifierClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer k-123", r.Header.Get("Authorization"))
		assert.Equal(t, "jane.citizen@qbe.com", r.URL.Query().Get("email"))
		fmt.Fprint(w, `{"deliverable": true}`)
	}))
	defer srv.Close()

	v := NewVerifierClient(srv.URL, "k-123")
	ok, err := v.Verify(context.Background(), "jane.citizen@qbe.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifierClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	v := NewVerifierClient(srv.URL, "k-123")
	_, err := v.Verify(context.Background(), "jane.citizen@qbe.com")
	assert.Error(t, err)
}

func newTestEnricher(cfg config.Config, srvURL string) *Enricher {
	client := fetch.NewClient(fetch.NewHostLimiter(100, 10))
	searcher := fetch.NewSearcher(client)
	searcher.BaseURL = srvURL + "/search?q="
	return NewEnricher(cfg, client, searcher, nil, nil)
}

func TestEnrichCompanyFindsContacts(t *testing.T) {
	var srvURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/about/leadership":
			fmt.Fprint(w, `<html><body>
<h1>Leadership</h1>
<p>Jane Citizen, Chief Technology Officer. +61 2 9375 4444</p>
</body></html>`)
		case "/search":
			fmt.Fprintf(w, `<html><body>
<a class="result__a" href="%s/in/mary">Mary Jones - CIO at Example Insurance | LinkedIn</a>
</body></html>`, srvURL+"/linkedin.com")
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	srvURL = srv.URL

	cfg := config.Default()
	cfg.Enrich.LeadershipPaths = []string{"/about/leadership"}
	e := newTestEnricher(cfg, srv.URL)

	execs := e.EnrichCompany(context.Background(), domain.Company{
		Name:    "Example Insurance",
		Website: srv.URL,
	})
	require.Len(t, execs, 2)

	names := []string{execs[0].Name, execs[1].Name}
	assert.ElementsMatch(t, []string{"Jane Citizen", "Mary Jones"}, names)
	for _, ex := range execs {
		if ex.Name == "Jane Citizen" {
			assert.Equal(t, "+61 2 9375 4444", ex.Phone)
		}
		if ex.Email != "" {
			assert.Contains(t, []domain.Verification{domain.VerifyNone, domain.VerifyMX}, ex.Verified)
			assert.Contains(t, []float64{confPattern, confMX}, ex.Confidence)
		}
	}
}

func TestEnrichCompanyNothingFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer srv.Close()

	cfg := config.Default()
	e := newTestEnricher(cfg, srv.URL)

	execs := e.EnrichCompany(context.Background(), domain.Company{
		Name:    "Example Insurance",
		Website: srv.URL,
	})
	assert.Empty(t, execs, "no invented contacts when nothing was found")
}

func TestRunSkipsInactiveAndWritesFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/about/leadership" {
			fmt.Fprint(w, `<html><body><h1>Leadership</h1>
<p>Jane Citizen, Chief Technology Officer</p></body></html>`)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	paths := pipeline.Paths{DataDir: t.TempDir()}
	require.NoError(t, paths.EnsureDirs())
	require.NoError(t, pipeline.WriteCompanies(paths.VerifiedCompanies(), []domain.Company{
		{Name: "Active Insurance", Website: srv.URL, HiringStatus: domain.HiringActive},
		{Name: "Sleepy Bank", Website: srv.URL, HiringStatus: domain.HiringInactive},
		{Name: "Quiet Insurer", Website: srv.URL, HiringStatus: domain.HiringUnknown},
	}))

	cfg := config.Default()
	cfg.Enrich.LeadershipPaths = []string{"/about/leadership"}
	cfg.Enrich.Workers = 2
	e := newTestEnricher(cfg, srv.URL)

	n, err := Run(context.Background(), e, paths)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "inactive company dropped")

	companies, err := pipeline.ReadCompanies(paths.EnrichedCompanies(), "enrich")
	require.NoError(t, err)
	require.Len(t, companies, 2)
	for _, c := range companies {
		assert.NotEqual(t, domain.HiringInactive, c.HiringStatus)
	}

	execs, err := pipeline.ReadExecutives(paths.Executives(), "enrich")
	require.NoError(t, err)
	assert.NotEmpty(t, execs)
}

func TestRunRequiresVerificationOutput(t *testing.T) {
	paths := pipeline.Paths{DataDir: t.TempDir()}
	require.NoError(t, paths.EnsureDirs())

	e := NewEnricher(config.Default(), nil, nil, nil, nil)
	_, err := Run(context.Background(), e, paths)
	var miss *pipeline.MissingInputError
	require.ErrorAs(t, err, &miss)
	assert.Equal(t, "verify", miss.Producer)
}
