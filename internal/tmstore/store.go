package tmstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrLocked reports that another process holds the translation memory.
var ErrLocked = errors.New("translation memory is locked by another process")

// Run records one alignment invocation and its aggregate counters.
type Run struct {
	ID          string
	CreatedAt   time.Time
	SourcePath  string
	TargetPath  string
	SourceLang  string
	TargetLang  string
	Ratio       float64
	Variance    float64
	HardRegions int
	Beads       int
	NewPairs    int
	TotalCost   int
}

// Pair is one deduplicated translation unit. SourceText and TargetText
// join the unit's lines with newlines; Digest keys the pair by content.
type Pair struct {
	Digest     string
	SourceText string
	TargetText string
	Kind       string
	Cost       int
	RunID      string
	CreatedAt  time.Time
}

// Store manages translation-memory persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the translation memory at path and
// applies migrations. It returns ErrLocked when another process holds
// the store.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create translation memory directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	held, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire translation memory lock: %w", err)
	}
	if !held {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lock: lock}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database connection and the process lock.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// RecordRun inserts the run and its pairs, returning how many pairs were
// new. Pairs already present under the same digest are left untouched,
// including their original run attribution. The run's ID is assigned when
// empty, and NewPairs is set to the insert count on both the argument and
// the stored row.
func (s *Store) RecordRun(ctx context.Context, run *Run, pairs []Pair) (int, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	timestamp := run.CreatedAt.UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO runs (
            id, created_at, source_path, target_path, source_lang, target_lang,
            ratio, variance, hard_regions, beads, new_pairs, total_cost
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		timestamp,
		run.SourcePath,
		run.TargetPath,
		run.SourceLang,
		run.TargetLang,
		run.Ratio,
		run.Variance,
		run.HardRegions,
		run.Beads,
		0,
		run.TotalCost,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	inserted := 0
	for _, pair := range pairs {
		digest := pair.Digest
		if digest == "" {
			digest = PairDigest(pair.SourceText, pair.TargetText)
		}
		res, err := tx.ExecContext(
			ctx,
			`INSERT OR IGNORE INTO pairs (
                digest, source_text, target_text, kind, cost, run_id, created_at
            ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			digest,
			pair.SourceText,
			pair.TargetText,
			pair.Kind,
			pair.Cost,
			run.ID,
			timestamp,
		)
		if err != nil {
			return 0, fmt.Errorf("insert pair: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		inserted += int(affected)
	}

	if _, err := tx.ExecContext(ctx, "UPDATE runs SET new_pairs = ? WHERE id = ?", inserted, run.ID); err != nil {
		return 0, fmt.Errorf("update run pair count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit run: %w", err)
	}
	run.NewPairs = inserted
	return inserted, nil
}

// ListRuns returns all recorded runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, created_at, source_path, target_path, source_lang, target_lang,
                ratio, variance, hard_regions, beads, new_pairs, total_cost
         FROM runs ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt string
		if err := rows.Scan(
			&run.ID,
			&createdAt,
			&run.SourcePath,
			&run.TargetPath,
			&run.SourceLang,
			&run.TargetLang,
			&run.Ratio,
			&run.Variance,
			&run.HardRegions,
			&run.Beads,
			&run.NewPairs,
			&run.TotalCost,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp: %w", err)
		}
		run.CreatedAt = ts
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// CountPairs returns the number of stored pairs.
func (s *Store) CountPairs(ctx context.Context) (int64, error) {
	var count int64
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM pairs")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count pairs: %w", err)
	}
	return count, nil
}

// Stats summarizes the store contents.
type Stats struct {
	Runs   int64
	Pairs  int64
	ByKind map[string]int64
}

// ReadStats gathers store-wide counters.
func (s *Store) ReadStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{ByKind: make(map[string]int64)}

	row := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM runs")
	if err := row.Scan(&stats.Runs); err != nil {
		return nil, fmt.Errorf("count runs: %w", err)
	}

	pairs, err := s.CountPairs(ctx)
	if err != nil {
		return nil, err
	}
	stats.Pairs = pairs

	rows, err := s.db.QueryContext(ctx, "SELECT kind, COUNT(1) FROM pairs GROUP BY kind")
	if err != nil {
		return nil, fmt.Errorf("count pairs by kind: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var kind string
		var count int64
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("scan pair kind: %w", err)
		}
		stats.ByKind[kind] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pair kinds: %w", err)
	}
	return stats, nil
}
