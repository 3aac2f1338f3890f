// Package store keeps a SQLite translation memory so a horoscope translated once is not
// sent to a translation service again.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// Entry is one translation memory row.
type Entry struct {
	ID             string
	SourceText     string
	SourceLang     string
	TargetLang     string
	TranslatedText string
	ServiceUsed    string
	UsageCount     int
	CreatedAt      time.Time
	LastUsed       time.Time
}

// Stats summarises translation memory usage.
type Stats struct {
	TotalEntries int
	TotalUsage   int
	Services     map[string]int
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS translation_memory (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		source_lang TEXT NOT NULL,
		target_lang TEXT NOT NULL,
		translated_text TEXT NOT NULL,
		service_used TEXT NOT NULL,
		usage_count INTEGER DEFAULT 1,
		created_at TIMESTAMP NOT NULL,
		last_used TIMESTAMP NOT NULL,
		UNIQUE(source_text, source_lang, target_lang)
	);

	CREATE INDEX IF NOT EXISTS idx_memory_lookup ON translation_memory(source_text, source_lang, target_lang);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Lookup returns the remembered translation for sourceText and bumps its usage count.
func (s *Store) Lookup(ctx context.Context, sourceText, sourceLang, targetLang string) (*Entry, bool, error) {
	key := normalizeText(sourceText)

	e := &Entry{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source_text, source_lang, target_lang, translated_text, service_used, usage_count, created_at, last_used
		 FROM translation_memory WHERE source_text = ? AND source_lang = ? AND target_lang = ?`,
		key, sourceLang, targetLang).Scan(
		&e.ID, &e.SourceText, &e.SourceLang, &e.TargetLang, &e.TranslatedText,
		&e.ServiceUsed, &e.UsageCount, &e.CreatedAt, &e.LastUsed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	if _, err := s.db.ExecContext(ctx,
		`UPDATE translation_memory SET usage_count = usage_count + 1, last_used = ? WHERE id = ?`,
		now, e.ID); err != nil {
		return nil, false, err
	}
	e.UsageCount++
	e.LastUsed = now

	return e, true, nil
}

// Save remembers a translation, replacing any earlier one for the same text and language pair.
func (s *Store) Save(ctx context.Context, sourceText, sourceLang, targetLang, translatedText, serviceUsed string) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translation_memory (id, source_text, source_lang, target_lang, translated_text, service_used, usage_count, created_at, last_used)
		 VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)
		 ON CONFLICT(source_text, source_lang, target_lang) DO UPDATE SET
		   translated_text = excluded.translated_text,
		   service_used = excluded.service_used,
		   last_used = excluded.last_used`,
		uuid.New().String(), normalizeText(sourceText), sourceLang, targetLang, translatedText, serviceUsed, now, now)
	return err
}

// List returns all entries, most recently used first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_text, source_lang, target_lang, translated_text, service_used, usage_count, created_at, last_used
		 FROM translation_memory ORDER BY last_used DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SourceText, &e.SourceLang, &e.TargetLang, &e.TranslatedText,
			&e.ServiceUsed, &e.UsageCount, &e.CreatedAt, &e.LastUsed); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{Services: make(map[string]int)}

	rows, err := s.db.QueryContext(ctx,
		`SELECT service_used, COUNT(*), COALESCE(SUM(usage_count), 0) FROM translation_memory GROUP BY service_used`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var service string
		var entries, usage int
		if err := rows.Scan(&service, &entries, &usage); err != nil {
			return nil, err
		}
		stats.Services[service] = entries
		stats.TotalEntries += entries
		stats.TotalUsage += usage
	}
	return stats, rows.Err()
}

// Delete removes one entry. Deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM translation_memory WHERE id = ?`, id)
	return err
}

// Clear removes every entry and reports how many were dropped.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM translation_memory`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Close() error {
	return s.db.Close()
}

// normalizeText makes visually identical texts share one key.
func normalizeText(text string) string {
	return norm.NFC.String(strings.Join(strings.Fields(text), " "))
}
