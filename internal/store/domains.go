package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
)

// GetCompanyDomain returns the cached website domain or "" if missing.
// Rows are keyed by domain.Key, so name variants like "QBE Insurance Group"
// and "QBE Insurance Group Limited" share one cache entry.
func GetCompanyDomain(ctx context.Context, db *sql.DB, company string) (string, error) {
	key := domain.Key(company)
	if key == "" {
		return "", nil
	}

	var host string
	err := db.QueryRowContext(ctx,
		`SELECT domain FROM company_domains WHERE company = ? LIMIT 1;`,
		key,
	).Scan(&host)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(host), nil
}

func UpsertCompanyDomain(ctx context.Context, db *sql.DB, company, host string) error {
	key := domain.Key(company)
	host = strings.ToLower(strings.TrimSpace(host))

	if key == "" || host == "" {
		return nil
	}

	_, err := db.ExecContext(ctx, `
INSERT INTO company_domains(company, domain, fetched_at)
VALUES(?,?,?)
ON CONFLICT(company) DO UPDATE SET
  domain = excluded.domain,
  fetched_at = excluded.fetched_at;
`, key, host, time.Now().UTC().Format(time.RFC3339))

	return err
}
