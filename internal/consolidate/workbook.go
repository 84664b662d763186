package consolidate

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/config"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
)

const (
	sheetCompanies     = "Company Data"
	sheetDashboard     = "Summary Dashboard"
	sheetMethodology   = "Methodology"
	sheetSources       = "Sources"
	sheetOpportunities = "Top Opportunities"
)

// Document properties are pinned so that consolidating unchanged inputs
// produces a byte-comparable workbook.
const pinnedTimestamp = "2024-01-01T00:00:00Z"

type workbook struct {
	f   *excelize.File
	cfg config.Config

	headerStyle int
	titleStyle  int
	scoreStyle  int
}

// writeWorkbook renders all five sheets and saves the file. A sheet that
// fails to render is logged and skipped; the workbook is still written.
func writeWorkbook(path string, records []Scored, cfg config.Config) error {
	f := excelize.NewFile()
	defer f.Close()

	wb := &workbook{f: f, cfg: cfg}
	if err := wb.initStyles(); err != nil {
		return fmt.Errorf("workbook styles: %w", err)
	}

	if err := f.SetSheetName("Sheet1", sheetCompanies); err != nil {
		return fmt.Errorf("workbook sheets: %w", err)
	}
	for _, name := range []string{sheetDashboard, sheetMethodology, sheetSources, sheetOpportunities} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("workbook sheets: %w", err)
		}
	}

	sheets := []struct {
		name  string
		build func([]Scored) error
	}{
		{sheetCompanies, wb.buildCompanies},
		{sheetDashboard, wb.buildDashboard},
		{sheetMethodology, wb.buildMethodology},
		{sheetSources, wb.buildSources},
		{sheetOpportunities, wb.buildOpportunities},
	}
	for _, s := range sheets {
		if err := s.build(records); err != nil {
			log.Printf("[consolidate] sheet %q failed, skipping: %v", s.name, err)
		}
	}

	if idx, err := f.GetSheetIndex(sheetDashboard); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:        "anz-prospect",
		Title:          "ANZ Insurance & Finance Prospects",
		Description:    "Consolidated prospect data with quality and opportunity scores",
		Created:        pinnedTimestamp,
		Modified:       pinnedTimestamp,
		LastModifiedBy: "anz-prospect",
	}); err != nil {
		return fmt.Errorf("workbook props: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("workbook save: %w", err)
	}
	return nil
}

func (wb *workbook) initStyles() error {
	var err error
	wb.headerStyle, err = wb.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1F4E78"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center", Vertical: "center",
		},
	})
	if err != nil {
		return err
	}
	wb.titleStyle, err = wb.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "1F4E78"},
	})
	if err != nil {
		return err
	}
	wb.scoreStyle, err = wb.f.NewStyle(&excelize.Style{
		NumFmt: 2, // 0.00
	})
	return err
}

func (wb *workbook) writeHeader(sheet string, row int, cols []string) error {
	for i, h := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := wb.f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(cols), row)
	return wb.f.SetCellStyle(sheet, first, last, wb.headerStyle)
}

func (wb *workbook) freezeTopRow(sheet string) error {
	return wb.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

var companyCols = []string{
	"Company", "Industry", "Country", "Market Cap", "Employees",
	"Website", "LinkedIn", "Hiring Status", "Open Roles",
	"Executives", "Top Contact", "Contact Email", "Data Quality Score",
}

func (wb *workbook) buildCompanies(records []Scored) error {
	s := sheetCompanies
	if err := wb.writeHeader(s, 1, companyCols); err != nil {
		return err
	}

	for i, r := range records {
		row := i + 2
		c := r.Company
		contact, email := topContact(r.Executives)
		vals := []any{
			c.Name, string(c.Industry), c.Country, c.MarketCap,
			orNil(c.CompanySize), c.Website, c.LinkedInURL,
			string(c.HiringStatus), strings.Join(c.OpenRoles, ", "),
			len(r.Executives), contact, email, r.QualityScore,
		}
		for col, v := range vals {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := wb.f.SetCellValue(s, cell, v); err != nil {
				return err
			}
		}
		scoreCell, _ := excelize.CoordinatesToCellName(len(vals), row)
		if err := wb.f.SetCellStyle(s, scoreCell, scoreCell, wb.scoreStyle); err != nil {
			return err
		}
	}

	if err := wb.f.SetColWidth(s, "A", "A", 32); err != nil {
		return err
	}
	if err := wb.f.SetColWidth(s, "B", "M", 18); err != nil {
		return err
	}
	if len(records) > 0 {
		if err := wb.statusFormat(s, fmt.Sprintf("H2:H%d", len(records)+1)); err != nil {
			return err
		}
		if err := wb.scoreFormat(s, fmt.Sprintf("M2:M%d", len(records)+1)); err != nil {
			return err
		}
	}
	return wb.freezeTopRow(s)
}

// statusFormat colours the hiring status column green/amber/red.
func (wb *workbook) statusFormat(sheet, ref string) error {
	mk := func(fill string) (int, error) {
		return wb.f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
		})
	}
	active, err := mk("C6EFCE")
	if err != nil {
		return err
	}
	unknown, err := mk("FFEB9C")
	if err != nil {
		return err
	}
	inactive, err := mk("FFC7CE")
	if err != nil {
		return err
	}

	return wb.f.SetConditionalFormat(sheet, ref, []excelize.ConditionalFormatOptions{
		{Type: "cell", Criteria: "==", Value: `"active"`, Format: &active},
		{Type: "cell", Criteria: "==", Value: `"unknown"`, Format: &unknown},
		{Type: "cell", Criteria: "==", Value: `"inactive"`, Format: &inactive},
	})
}

func (wb *workbook) scoreFormat(sheet, ref string) error {
	return wb.f.SetConditionalFormat(sheet, ref, []excelize.ConditionalFormatOptions{
		{
			Type:     "3_color_scale",
			Criteria: "=",
			MinType:  "num", MinValue: "0", MinColor: "F8696B",
			MidType: "num", MidValue: "0.5", MidColor: "FFEB84",
			MaxType: "num", MaxValue: "1", MaxColor: "63BE7B",
		},
	})
}

func (wb *workbook) buildDashboard(records []Scored) error {
	s := sheetDashboard
	if err := wb.f.SetCellValue(s, "A1", "ANZ Insurance & Finance Prospects"); err != nil {
		return err
	}
	if err := wb.f.SetCellStyle(s, "A1", "A1", wb.titleStyle); err != nil {
		return err
	}

	var active, inactive, unknown, execs, emails int
	var scoreSum float64
	byIndustry := map[string]int{}
	byCountry := map[string]int{}
	var countries []string
	for _, r := range records {
		switch r.Company.HiringStatus {
		case domain.HiringActive:
			active++
		case domain.HiringInactive:
			inactive++
		default:
			unknown++
		}
		execs += len(r.Executives)
		for _, e := range r.Executives {
			if e.Email != "" && e.Verified != domain.VerifyNone {
				emails++
			}
		}
		scoreSum += r.QualityScore
		byIndustry[string(r.Company.Industry)]++
		country := r.Company.Country
		if country == "" {
			country = "Unknown"
		}
		if byCountry[country] == 0 {
			countries = append(countries, country)
		}
		byCountry[country]++
	}
	sort.Strings(countries)
	avg := 0.0
	if len(records) > 0 {
		avg = scoreSum / float64(len(records))
	}

	if err := wb.writeHeader(s, 3, []string{"Metric", "Value"}); err != nil {
		return err
	}
	metrics := [][]any{
		{"Total companies", len(records)},
		{"Actively hiring", active},
		{"Hiring status unknown", unknown},
		{"Not hiring", inactive},
		{"Executives identified", execs},
		{"Verified email addresses", emails},
		{"Average data quality score", avg},
	}
	for i, m := range metrics {
		row := i + 4
		if err := wb.f.SetCellValue(s, fmt.Sprintf("A%d", row), m[0]); err != nil {
			return err
		}
		if err := wb.f.SetCellValue(s, fmt.Sprintf("B%d", row), m[1]); err != nil {
			return err
		}
	}
	avgCell := fmt.Sprintf("B%d", 3+len(metrics))
	if err := wb.f.SetCellStyle(s, avgCell, avgCell, wb.scoreStyle); err != nil {
		return err
	}

	// hiring status breakdown feeds the pie chart
	if err := wb.writeHeader(s, 13, []string{"Hiring Status", "Companies"}); err != nil {
		return err
	}
	for i, row := range [][]any{
		{"active", active}, {"unknown", unknown}, {"inactive", inactive},
	} {
		if err := wb.f.SetCellValue(s, fmt.Sprintf("A%d", 14+i), row[0]); err != nil {
			return err
		}
		if err := wb.f.SetCellValue(s, fmt.Sprintf("B%d", 14+i), row[1]); err != nil {
			return err
		}
	}
	if err := wb.f.AddChart(s, "D13", &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       "Hiring status",
			Categories: fmt.Sprintf("'%s'!$A$14:$A$16", s),
			Values:     fmt.Sprintf("'%s'!$B$14:$B$16", s),
		}},
		Title: []excelize.RichTextRun{{Text: "Companies by hiring status"}},
	}); err != nil {
		return err
	}

	// industry breakdown feeds the bar chart
	startRow := 29
	if err := wb.writeHeader(s, startRow, []string{"Industry", "Companies"}); err != nil {
		return err
	}
	industries := []string{
		string(domain.IndustryInsurance),
		string(domain.IndustryFinance),
		string(domain.IndustryBoth),
	}
	for i, ind := range industries {
		row := startRow + 1 + i
		if err := wb.f.SetCellValue(s, fmt.Sprintf("A%d", row), ind); err != nil {
			return err
		}
		if err := wb.f.SetCellValue(s, fmt.Sprintf("B%d", row), byIndustry[ind]); err != nil {
			return err
		}
	}
	if err := wb.f.AddChart(s, fmt.Sprintf("D%d", startRow), &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       "Companies",
			Categories: fmt.Sprintf("'%s'!$A$%d:$A$%d", s, startRow+1, startRow+len(industries)),
			Values:     fmt.Sprintf("'%s'!$B$%d:$B$%d", s, startRow+1, startRow+len(industries)),
		}},
		Title: []excelize.RichTextRun{{Text: "Companies by industry"}},
	}); err != nil {
		return err
	}

	countryRow := startRow + len(industries) + 2
	if err := wb.writeHeader(s, countryRow, []string{"Country", "Companies"}); err != nil {
		return err
	}
	for i, country := range countries {
		row := countryRow + 1 + i
		if err := wb.f.SetCellValue(s, fmt.Sprintf("A%d", row), country); err != nil {
			return err
		}
		if err := wb.f.SetCellValue(s, fmt.Sprintf("B%d", row), byCountry[country]); err != nil {
			return err
		}
	}

	if err := wb.f.SetColWidth(s, "A", "A", 30); err != nil {
		return err
	}
	return wb.f.SetColWidth(s, "B", "B", 14)
}

func (wb *workbook) buildMethodology([]Scored) error {
	s := sheetMethodology
	for i, line := range methodologyLines {
		cell := fmt.Sprintf("A%d", i+1)
		if err := wb.f.SetCellValue(s, cell, line); err != nil {
			return err
		}
	}
	if err := wb.f.SetCellStyle(s, "A1", "A1", wb.titleStyle); err != nil {
		return err
	}
	return wb.f.SetColWidth(s, "A", "A", 90)
}

func (wb *workbook) buildSources([]Scored) error {
	s := sheetSources
	if err := wb.writeHeader(s, 1, []string{"Source", "Type", "URL", "Coverage"}); err != nil {
		return err
	}
	for i, src := range sourceRows {
		row := i + 2
		vals := []any{src.Name, src.Kind, src.URL, src.Coverage}
		for col, v := range vals {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := wb.f.SetCellValue(s, cell, v); err != nil {
				return err
			}
		}
	}
	if err := wb.f.SetColWidth(s, "A", "C", 32); err != nil {
		return err
	}
	if err := wb.f.SetColWidth(s, "D", "D", 60); err != nil {
		return err
	}
	return wb.freezeTopRow(s)
}

var opportunityCols = []string{
	"Rank", "Company", "Industry", "Country", "Hiring Status",
	"Open Roles", "Quality Score", "Opportunity Score", "Top Contact", "Contact Email",
}

// buildOpportunities lists the best prospects, already ranked by
// opportunity score descending with name as tiebreak.
func (wb *workbook) buildOpportunities(records []Scored) error {
	s := sheetOpportunities
	if err := wb.writeHeader(s, 1, opportunityCols); err != nil {
		return err
	}

	n := wb.cfg.Scoring.TopN
	if n > len(records) {
		n = len(records)
	}
	for i := 0; i < n; i++ {
		r := records[i]
		row := i + 2
		contact, email := topContact(r.Executives)
		vals := []any{
			i + 1, r.Company.Name, string(r.Company.Industry), r.Company.Country,
			string(r.Company.HiringStatus), strings.Join(r.Company.OpenRoles, ", "),
			r.QualityScore, r.Opportunity, contact, email,
		}
		for col, v := range vals {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := wb.f.SetCellValue(s, cell, v); err != nil {
				return err
			}
		}
		for _, col := range []string{"G", "H"} {
			cell := fmt.Sprintf("%s%d", col, row)
			if err := wb.f.SetCellStyle(s, cell, cell, wb.scoreStyle); err != nil {
				return err
			}
		}
	}

	if n > 0 {
		if err := wb.scoreFormat(s, fmt.Sprintf("H2:H%d", n+1)); err != nil {
			return err
		}
	}
	if err := wb.f.SetColWidth(s, "B", "B", 32); err != nil {
		return err
	}
	if err := wb.f.SetColWidth(s, "C", "J", 18); err != nil {
		return err
	}
	return wb.freezeTopRow(s)
}

// topContact returns the highest-confidence executive's name and email.
func topContact(execs []domain.Executive) (name, email string) {
	best := -1.0
	for _, e := range execs {
		if e.Email == "" {
			continue
		}
		if e.Confidence > best {
			best = e.Confidence
			name, email = e.Name, e.Email
		}
	}
	if name == "" && len(execs) > 0 {
		name = execs[0].Name
	}
	return name, email
}

func orNil(n int) any {
	if n == 0 {
		return ""
	}
	return n
}
