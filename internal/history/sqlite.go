package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/garrettladley/cogdash/internal/migrations"
)

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore keeps the newest capacity entries in a local database file.
type SQLiteStore struct {
	db       *sql.DB
	capacity int
}

// OpenSQLite opens or creates the database at path and applies pending migrations.
func OpenSQLite(ctx context.Context, path string, capacity int) (*SQLiteStore, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if _, err := migrations.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating history database: %w", err)
	}
	return &SQLiteStore{db: db, capacity: capacity}, nil
}

// Append inserts e and drops everything older than the newest capacity rows in
// the same transaction.
func (s *SQLiteStore) Append(ctx context.Context, e Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning append: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (recorded_at, focus_quality, context_switch_cost, switching_rate, burnout_score, burnout_level, total_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.RecordedAt.UnixMilli(),
		nullFloat(e.FocusQuality),
		nullFloat(e.ContextSwitchCost),
		nullFloat(e.SwitchingRate),
		nullFloat(e.BurnoutScore),
		e.BurnoutLevel,
		nullFloat(e.TotalHours),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM snapshots
		WHERE id NOT IN (
			SELECT id FROM snapshots
			ORDER BY recorded_at DESC, id DESC
			LIMIT ?
		)`, s.capacity); err != nil {
		return fmt.Errorf("trimming snapshots: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing append: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT recorded_at, focus_quality, context_switch_cost, switching_rate, burnout_score, burnout_level, total_hours
		FROM snapshots
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Entry
	for rows.Next() {
		var (
			e          Entry
			recordedAt int64
		)
		var fqs, csc, rate, burnout, hours sql.NullFloat64
		if err := rows.Scan(&recordedAt, &fqs, &csc, &rate, &burnout, &e.BurnoutLevel, &hours); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		e.RecordedAt = time.UnixMilli(recordedAt).UTC()
		e.FocusQuality = floatPtr(fqs)
		e.ContextSwitchCost = floatPtr(csc)
		e.SwitchingRate = floatPtr(rate)
		e.BurnoutScore = floatPtr(burnout)
		e.TotalHours = floatPtr(hours)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}

	slices.Reverse(out)
	return out, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
