package pipeline

import (
	"os"
	"path/filepath"
)

// Paths resolves the fixed stage-file layout under a data dir.
type Paths struct {
	DataDir string
}

func (p Paths) RawCompanies() string      { return filepath.Join(p.DataDir, "raw", "companies.csv") }
func (p Paths) VerifiedCompanies() string {
	return filepath.Join(p.DataDir, "processed", "companies_verified.csv")
}
func (p Paths) EnrichedCompanies() string {
	return filepath.Join(p.DataDir, "processed", "companies_enriched.csv")
}
func (p Paths) Executives() string {
	return filepath.Join(p.DataDir, "processed", "executives.csv")
}
func (p Paths) Workbook(name string) string {
	return filepath.Join(p.DataDir, "final", name)
}
func (p Paths) Database() string { return filepath.Join(p.DataDir, "prospect.db") }
func (p Paths) LockFile() string { return filepath.Join(p.DataDir, "prospect.lock") }

func (p Paths) EnsureDirs() error {
	for _, d := range []string{
		p.DataDir,
		filepath.Join(p.DataDir, "raw"),
		filepath.Join(p.DataDir, "processed"),
		filepath.Join(p.DataDir, "final"),
	} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}
