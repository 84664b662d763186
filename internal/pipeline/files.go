package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
)

// MissingInputError means an upstream stage has not produced its file yet.
// Stages abort with it; the CLI turns it into a non-zero exit.
type MissingInputError struct {
	Path     string
	Producer string // stage that writes the file
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input file %s not found; run %q first", e.Path, e.Producer)
}

var companyHeader = []string{
	"name", "industry", "country", "market_cap", "company_size",
	"website", "linkedin_url", "hiring_status", "open_roles",
	"source_refs", "last_verified",
}

const listSep = "|"

// WriteCompanies overwrites path wholesale with one row per company.
func WriteCompanies(path string, companies []domain.Company) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write companies: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(companyHeader); err != nil {
		return err
	}
	for _, c := range companies {
		row := []string{
			c.Name,
			string(c.Industry),
			c.Country,
			c.MarketCap,
			itoaOrEmpty(c.CompanySize),
			c.Website,
			c.LinkedInURL,
			string(c.HiringStatus),
			strings.Join(c.OpenRoles, listSep),
			strings.Join(c.SourceRefs, listSep),
			c.LastVerified,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ReadCompanies loads a stage file, reporting a MissingInputError when the
// upstream stage hasn't run.
func ReadCompanies(path, producer string) ([]domain.Company, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingInputError{Path: path, Producer: producer}
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read companies %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var out []domain.Company
	for _, row := range rows[1:] {
		if len(row) < len(companyHeader) {
			continue
		}
		c := domain.Company{
			Name:         row[0],
			Industry:     domain.Industry(row[1]),
			Country:      row[2],
			MarketCap:    row[3],
			CompanySize:  atoiOrZero(row[4]),
			Website:      row[5],
			LinkedInURL:  row[6],
			HiringStatus: domain.HiringStatus(row[7]),
			OpenRoles:    splitList(row[8]),
			SourceRefs:   splitList(row[9]),
			LastVerified: row[10],
		}
		out = append(out, c)
	}
	return out, nil
}

var executiveHeader = []string{
	"company_key", "name", "title", "linkedin_url", "email", "phone",
	"confidence", "verification", "source",
}

func WriteExecutives(path string, execs []domain.Executive) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write executives: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(executiveHeader); err != nil {
		return err
	}
	for _, e := range execs {
		row := []string{
			e.CompanyKey,
			e.Name,
			e.Title,
			e.LinkedInURL,
			e.Email,
			e.Phone,
			strconv.FormatFloat(e.Confidence, 'f', 2, 64),
			string(e.Verified),
			e.Source,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func ReadExecutives(path, producer string) ([]domain.Executive, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingInputError{Path: path, Producer: producer}
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read executives %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var out []domain.Executive
	for _, row := range rows[1:] {
		if len(row) < len(executiveHeader) {
			continue
		}
		conf, _ := strconv.ParseFloat(row[6], 64)
		out = append(out, domain.Executive{
			CompanyKey:  row[0],
			Name:        row[1],
			Title:       row[2],
			LinkedInURL: row[3],
			Email:       row[4],
			Phone:       row[5],
			Confidence:  conf,
			Verified:    domain.Verification(row[7]),
			Source:      row[8],
		})
	}
	return out, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSep)
}

func itoaOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
