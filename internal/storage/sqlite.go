// Package storage provides the SQLite-backed crop bank for statnerf.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/statnerf/internal/core"
)

// ErrCropNotFound is returned when a crop ID is not in the bank.
var ErrCropNotFound = errors.New("storage: crop not found")

// Store manages the SQLite database connection for the crop bank.
type Store struct {
	db *sql.DB
}

// Crop is a named set of stats kept in the bank.
type Crop struct {
	ID        string
	Name      string
	Stats     core.PlantStats
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NerfEntry records one nerf applied to a crop.
type NerfEntry struct {
	ID          int64
	CropID      string
	Before      core.PlantStats
	After       core.PlantStats
	ScoreBefore int64
	ScoreAfter  int64
	MaxScore    int
	Reached     bool
	CreatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS crops (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			gain INTEGER NOT NULL,
			growth INTEGER NOT NULL,
			strength INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_crops_name ON crops(name);

		CREATE TABLE IF NOT EXISTS nerf_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			crop_id TEXT NOT NULL REFERENCES crops(id) ON DELETE CASCADE,
			gain_before INTEGER NOT NULL,
			growth_before INTEGER NOT NULL,
			strength_before INTEGER NOT NULL,
			gain_after INTEGER NOT NULL,
			growth_after INTEGER NOT NULL,
			strength_after INTEGER NOT NULL,
			score_before INTEGER NOT NULL,
			score_after INTEGER NOT NULL,
			max_score INTEGER NOT NULL,
			reached INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_nerf_log_crop ON nerf_log(crop_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// AddCrop stores a new crop and returns its generated ID.
func (s *Store) AddCrop(name string, stats core.PlantStats) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		"INSERT INTO crops (id, name, gain, growth, strength) VALUES (?, ?, ?, ?, ?)",
		id, name, stats.GainValue, stats.GrowthValue, stats.StrengthValue,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save crop: %w", err)
	}
	return id, nil
}

// Crop returns the crop with the given ID.
func (s *Store) Crop(id string) (*Crop, error) {
	row := s.db.QueryRow(
		`SELECT id, name, gain, growth, strength, created_at, updated_at
		 FROM crops WHERE id = ?`,
		id,
	)

	c, err := scanCrop(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCropNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query crop: %w", err)
	}
	return c, nil
}

// ListCrops returns every crop ordered by name.
func (s *Store) ListCrops() ([]Crop, error) {
	rows, err := s.db.Query(
		`SELECT id, name, gain, growth, strength, created_at, updated_at
		 FROM crops
		 ORDER BY name, created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query crops: %w", err)
	}
	defer rows.Close()

	var crops []Crop
	for rows.Next() {
		c, err := scanCrop(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		crops = append(crops, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return crops, nil
}

// DeleteCrop removes a crop and its nerf history.
func (s *Store) DeleteCrop(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if _, err := tx.Exec("DELETE FROM nerf_log WHERE crop_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete nerf history: %w", err)
	}
	result, err := tx.Exec("DELETE FROM crops WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete crop: %w", err)
	}
	if err := requireRow(result); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// RecordNerf stores the new stats of a crop together with a history entry,
// in one transaction. Returns the history entry ID.
func (s *Store) RecordNerf(e NerfEntry) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	update, err := tx.Exec(
		`UPDATE crops SET gain = ?, growth = ?, strength = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		e.After.GainValue, e.After.GrowthValue, e.After.StrengthValue, e.CropID,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot update crop: %w", err)
	}
	if err := requireRow(update); err != nil {
		return 0, err
	}

	result, err := tx.Exec(
		`INSERT INTO nerf_log (
			crop_id,
			gain_before, growth_before, strength_before,
			gain_after, growth_after, strength_after,
			score_before, score_after, max_score, reached
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.CropID,
		e.Before.GainValue, e.Before.GrowthValue, e.Before.StrengthValue,
		e.After.GainValue, e.After.GrowthValue, e.After.StrengthValue,
		e.ScoreBefore, e.ScoreAfter, e.MaxScore, e.Reached,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save nerf entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return id, nil
}

// NerfHistory returns the nerf entries of a crop, newest first.
func (s *Store) NerfHistory(cropID string, limit int) ([]NerfEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, crop_id,
		        gain_before, growth_before, strength_before,
		        gain_after, growth_after, strength_after,
		        score_before, score_after, max_score, reached, created_at
		 FROM nerf_log
		 WHERE crop_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		cropID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query nerf history: %w", err)
	}
	defer rows.Close()

	var entries []NerfEntry
	for rows.Next() {
		var e NerfEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.CropID,
			&e.Before.GainValue, &e.Before.GrowthValue, &e.Before.StrengthValue,
			&e.After.GainValue, &e.After.GrowthValue, &e.After.StrengthValue,
			&e.ScoreBefore, &e.ScoreAfter, &e.MaxScore, &e.Reached, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCrop(r rowScanner) (*Crop, error) {
	var c Crop
	var createdAt, updatedAt any
	if err := r.Scan(
		&c.ID, &c.Name,
		&c.Stats.GainValue, &c.Stats.GrowthValue, &c.Stats.StrengthValue,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return &c, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot read affected rows: %w", err)
	}
	if n == 0 {
		return ErrCropNotFound
	}
	return nil
}
