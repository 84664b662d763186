package consolidate

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/config"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/pipeline"
)

func testRecords(t *testing.T, cfg config.Config) []Scored {
	t.Helper()

	active := fullCompany()
	inactive := domain.Company{
		Name:         "Sleepy Bank",
		Industry:     domain.IndustryFinance,
		Country:      "Australia",
		HiringStatus: domain.HiringInactive,
	}
	execs := fullExecs()
	for i := range execs {
		execs[i].CompanyKey = domain.Key(active.Name)
	}
	return Build(cfg, []domain.Company{active}, []domain.Company{inactive}, execs)
}

func TestWriteWorkbookSheets(t *testing.T) {
	cfg := config.Default()
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, writeWorkbook(path, testRecords(t, cfg), cfg))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{
		sheetCompanies, sheetDashboard, sheetMethodology, sheetSources, sheetOpportunities,
	}, f.GetSheetList())

	rows, err := f.GetRows(sheetCompanies)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two companies")
	assert.Equal(t, companyCols, rows[0][:len(companyCols)])
	assert.Equal(t, "QBE Insurance Group", rows[1][0], "ranked first")
	assert.Equal(t, "active", rows[1][7])
	assert.Equal(t, "Jane Citizen", rows[1][10], "highest-confidence contact surfaces")
	assert.Equal(t, "jane.citizen@qbe.com", rows[1][11])
	assert.Equal(t, "Sleepy Bank", rows[2][0])

	q, err := strconv.ParseFloat(rows[1][12], 64)
	require.NoError(t, err)
	assert.Greater(t, q, 0.9)
	assert.LessOrEqual(t, q, 1.0)
}

func TestWorkbookDashboardCounts(t *testing.T) {
	cfg := config.Default()
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, writeWorkbook(path, testRecords(t, cfg), cfg))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue(sheetDashboard, cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Total companies", get("A4"))
	assert.Equal(t, "2", get("B4"))
	assert.Equal(t, "Actively hiring", get("A5"))
	assert.Equal(t, "1", get("B5"))
	assert.Equal(t, "Not hiring", get("A7"))
	assert.Equal(t, "1", get("B7"))
	assert.Equal(t, "Executives identified", get("A8"))
	assert.Equal(t, "2", get("B8"))
	assert.Equal(t, "Verified email addresses", get("A9"))
	assert.Equal(t, "2", get("B9"))

	assert.Equal(t, "Country", get("A34"))
	assert.Equal(t, "Australia", get("A35"))
	assert.Equal(t, "2", get("B35"))
}

func TestWorkbookTopOpportunities(t *testing.T) {
	cfg := config.Default()
	cfg.Scoring.TopN = 1
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, writeWorkbook(path, testRecords(t, cfg), cfg))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetOpportunities)
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus top_n rows")
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "QBE Insurance Group", rows[1][1])
}

// Consolidating the same inputs twice must produce the same workbook:
// same cell values everywhere, and a byte-stable company-data sheet.
func TestWorkbookIdempotent(t *testing.T) {
	cfg := config.Default()
	records := testRecords(t, cfg)

	read := func(path string) map[string][][]string {
		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()
		out := map[string][][]string{}
		for _, sheet := range f.GetSheetList() {
			rows, err := f.GetRows(sheet)
			require.NoError(t, err)
			out[sheet] = rows
		}
		return out
	}

	p1 := filepath.Join(t.TempDir(), "a.xlsx")
	p2 := filepath.Join(t.TempDir(), "b.xlsx")
	require.NoError(t, writeWorkbook(p1, records, cfg))
	require.NoError(t, writeWorkbook(p2, records, cfg))
	assert.Equal(t, read(p1), read(p2))

	// styling and metadata must not drift either, so compare the raw
	// worksheet XML, not just cell values
	assert.Equal(t, companySheetXML(t, p1), companySheetXML(t, p2))
}

// companySheetXML returns the raw XML part backing the company-data sheet.
// It is created first, so excelize stores it as sheet1.
func companySheetXML(t *testing.T, path string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	for _, zf := range zr.File {
		if zf.Name != "xl/worksheets/sheet1.xml" {
			continue
		}
		rc, err := zf.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}
	t.Fatalf("no worksheet part in %s", path)
	return ""
}

func TestConsolidateRunEndToEnd(t *testing.T) {
	cfg := config.Default()
	paths := pipeline.Paths{DataDir: t.TempDir()}
	require.NoError(t, paths.EnsureDirs())

	active := fullCompany()
	require.NoError(t, pipeline.WriteCompanies(paths.VerifiedCompanies(), []domain.Company{
		active,
		{Name: "Sleepy Bank", HiringStatus: domain.HiringInactive},
	}))
	require.NoError(t, pipeline.WriteCompanies(paths.EnrichedCompanies(), []domain.Company{active}))

	execs := fullExecs()
	for i := range execs {
		execs[i].CompanyKey = domain.Key(active.Name)
	}
	require.NoError(t, pipeline.WriteExecutives(paths.Executives(), execs))

	n, err := Run(t.Context(), cfg, paths)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f, err := excelize.OpenFile(paths.Workbook(cfg.App.OutputName))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheetCompanies)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestConsolidateRunWithoutEnrichment(t *testing.T) {
	cfg := config.Default()
	paths := pipeline.Paths{DataDir: t.TempDir()}
	require.NoError(t, paths.EnsureDirs())

	require.NoError(t, pipeline.WriteCompanies(paths.VerifiedCompanies(), []domain.Company{fullCompany()}))

	n, err := Run(t.Context(), cfg, paths)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "verification output alone is enough")
}

func TestConsolidateRunRequiresVerification(t *testing.T) {
	paths := pipeline.Paths{DataDir: t.TempDir()}
	require.NoError(t, paths.EnsureDirs())

	_, err := Run(t.Context(), config.Default(), paths)
	var miss *pipeline.MissingInputError
	require.ErrorAs(t, err, &miss)
	assert.Equal(t, "verify", miss.Producer)
}
