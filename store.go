package visionkit

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/eringen/visionkit/content"
)

// Store wraps a SQLite database holding synced gallery ideas and resource
// pack subscriptions. Boards are never stored.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the gallery read while sync writes; synchronous=NORMAL is
	// safe with WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS gallery_ideas (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    tags TEXT NOT NULL,
    src TEXT NOT NULL UNIQUE,
    synced_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS gallery_ideas_category ON gallery_ideas (category);
CREATE TABLE IF NOT EXISTS subscriptions (
    email TEXT PRIMARY KEY,
    created_at TEXT NOT NULL
);
`)
	return err
}

// SaveGalleryIdea inserts an idea, or updates the row with the same Src.
func (s *Store) SaveGalleryIdea(idea content.GalleryIdea) error {
	syncedAt := idea.SyncedAt
	if syncedAt.IsZero() {
		syncedAt = time.Now()
	}
	_, err := s.db.Exec(`
INSERT INTO gallery_ideas (title, category, tags, src, synced_at) VALUES (?, ?, ?, ?, ?)
ON CONFLICT(src) DO UPDATE SET title = excluded.title, category = excluded.category,
    tags = excluded.tags, synced_at = excluded.synced_at`,
		idea.Title, idea.Category, joinTags(idea.Tags), idea.Src, syncedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("visionkit: save idea %s: %w", idea.Src, err)
	}
	return nil
}

// ListGalleryIdeas returns ideas newest first. A non-empty category
// restricts the result to that category.
func (s *Store) ListGalleryIdeas(category string) ([]content.GalleryIdea, error) {
	var rows *sql.Rows
	var err error
	if category == "" {
		rows, err = s.db.Query(`SELECT id, title, category, tags, src, synced_at FROM gallery_ideas ORDER BY synced_at DESC, id DESC`)
	} else {
		rows, err = s.db.Query(`SELECT id, title, category, tags, src, synced_at FROM gallery_ideas WHERE category = ? ORDER BY synced_at DESC, id DESC`, category)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ideas []content.GalleryIdea
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, err
		}
		ideas = append(ideas, idea)
	}
	return ideas, rows.Err()
}

// GetGalleryIdea returns one idea by id, or ErrNotFound.
func (s *Store) GetGalleryIdea(id int64) (content.GalleryIdea, error) {
	row := s.db.QueryRow(`SELECT id, title, category, tags, src, synced_at FROM gallery_ideas WHERE id = ?`, id)
	return scanIdea(row)
}

// DeleteGalleryIdea removes an idea row. The image file is left in place.
func (s *Store) DeleteGalleryIdea(id int64) error {
	_, err := s.db.Exec(`DELETE FROM gallery_ideas WHERE id = ?`, id)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanIdea(sc scanner) (content.GalleryIdea, error) {
	var idea content.GalleryIdea
	var tags, syncedAt string
	if err := sc.Scan(&idea.ID, &idea.Title, &idea.Category, &tags, &idea.Src, &syncedAt); err != nil {
		return content.GalleryIdea{}, err
	}
	idea.Tags = ParseTags(tags)
	if t, err := time.Parse(time.RFC3339, syncedAt); err == nil {
		idea.SyncedAt = t
	}
	return idea, nil
}

// SaveSubscription records a resource pack signup. Signing up twice keeps
// the first timestamp; created reports whether the email was new.
func (s *Store) SaveSubscription(email string) (created bool, err error) {
	email = normalizeEmail(email)
	res, err := s.db.Exec(`INSERT OR IGNORE INTO subscriptions (email, created_at) VALUES (?, ?)`,
		email, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("visionkit: save subscription: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ListSubscriptions returns every signup, newest first.
func (s *Store) ListSubscriptions() ([]Subscription, error) {
	rows, err := s.db.Query(`SELECT email, created_at FROM subscriptions ORDER BY created_at DESC, email`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []Subscription
	for rows.Next() {
		var sub Subscription
		var created string
		if err := rows.Scan(&sub.Email, &created); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			sub.CreatedAt = t
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// joinTags encodes tags as ",a,b," so a single tag can be matched with instr.
func joinTags(tags []string) string {
	clean := CleanTags(tags)
	if len(clean) == 0 {
		return ","
	}
	return "," + strings.Join(clean, ",") + ","
}

// ParseTags splits a comma-delimited tag string (e.g. ",Career,Goals,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
