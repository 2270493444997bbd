package storage

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jmlim/smartstore-lister/smartstore"
)

// SnapshotStore persists the last successfully built category index so the
// resolver can degrade to recent data when the live tree is unavailable.
type SnapshotStore struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ smartstore.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore opens (or creates) the SQLite database at dbPath.
func NewSnapshotStore(dbPath string) (*SnapshotStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SnapshotStore{db: db}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SnapshotStore) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS category_snapshot (
		path TEXT PRIMARY KEY,
		category_id TEXT NOT NULL,
		saved_at DATETIME NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create category_snapshot table: %w", err)
	}
	return nil
}

// SaveCategories replaces the stored snapshot with entries.
func (s *SnapshotStore) SaveCategories(entries []smartstore.CategoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM category_snapshot"); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO category_snapshot (path, category_id, saved_at) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, e := range entries {
		if _, err := stmt.Exec(e.Path, e.ID, now); err != nil {
			return fmt.Errorf("failed to insert snapshot entry: %w", err)
		}
	}

	return tx.Commit()
}

// LoadCategories returns the stored snapshot in insertion order. An empty
// snapshot returns an empty slice, not an error.
func (s *SnapshotStore) LoadCategories() ([]smartstore.CategoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT path, category_id FROM category_snapshot ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer rows.Close()

	var entries []smartstore.CategoryEntry
	for rows.Next() {
		var e smartstore.CategoryEntry
		if err := rows.Scan(&e.Path, &e.ID); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
