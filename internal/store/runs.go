package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Run is one stage execution recorded for bookkeeping.
type Run struct {
	ID         string
	Stage      string
	StartedAt  string
	FinishedAt string
	Processed  int
	Failed     int
	Note       string
}

func StartRun(ctx context.Context, db *sql.DB, stage string) (string, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx, `
INSERT INTO runs(id, stage, started_at) VALUES(?,?,?);`,
		id, stage, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return id, nil
}

func FinishRun(ctx context.Context, db *sql.DB, id string, processed, failed int, note string) error {
	_, err := db.ExecContext(ctx, `
UPDATE runs
SET finished_at = ?, processed = ?, failed = ?, note = ?
WHERE id = ?;`,
		time.Now().UTC().Format(time.RFC3339), processed, failed, note, id)
	return err
}

func LastRun(ctx context.Context, db *sql.DB, stage string) (Run, error) {
	var r Run
	err := db.QueryRowContext(ctx, `
SELECT id, stage, started_at, finished_at, processed, failed, note
FROM runs
WHERE stage = ?
ORDER BY started_at DESC
LIMIT 1;`, stage).Scan(&r.ID, &r.Stage, &r.StartedAt, &r.FinishedAt, &r.Processed, &r.Failed, &r.Note)
	if err == sql.ErrNoRows {
		return Run{}, nil
	}
	return r, err
}
