// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/kanafall/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for sessions, records, and custom word lists.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			level INTEGER NOT NULL,
			word_list_id TEXT NOT NULL,
			wpm INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			total_words INTEGER NOT NULL,
			correct_words INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS best_records (
			mode TEXT PRIMARY KEY,
			best_wpm INTEGER NOT NULL,
			best_accuracy REAL NOT NULL,
			total_sessions INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS word_lists (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS words (
			id TEXT NOT NULL,
			list_id TEXT NOT NULL,
			japanese TEXT NOT NULL,
			reading TEXT NOT NULL,
			romaji TEXT NOT NULL,
			meaning TEXT NOT NULL,
			category TEXT NOT NULL,
			difficulty INTEGER NOT NULL,
			tags TEXT NOT NULL,
			PRIMARY KEY (list_id, id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_words_list_id ON words(list_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSession stores a completed round summary.
func (s *Store) InsertSession(ctx context.Context, rec model.SessionRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, mode, level, word_list_id, wpm, accuracy, total_words, correct_words, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		string(rec.Mode),
		rec.Level,
		rec.WordListID,
		rec.WPM,
		rec.Accuracy,
		rec.TotalWords,
		rec.CorrectWords,
		rec.DurationMs,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// ListSessions returns session records filtered and ordered by creation time.
func (s *Store) ListSessions(ctx context.Context, filter model.SessionFilter) ([]model.SessionRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if filter.Mode != "" {
		clauses = append(clauses, "mode = ?")
		args = append(args, string(filter.Mode))
	}
	if filter.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, mode, level, word_list_id, wpm, accuracy, total_words, correct_words, duration_ms, created_at
		FROM sessions
		WHERE %s
		ORDER BY created_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionRecord
	for rows.Next() {
		var rec model.SessionRecord
		var mode, createdAt string
		if err := rows.Scan(&rec.ID, &mode, &rec.Level, &rec.WordListID, &rec.WPM, &rec.Accuracy, &rec.TotalWords, &rec.CorrectWords, &rec.DurationMs, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		rec.Mode = model.GameMode(mode)
		rec.CreatedAt = parsed
		sessions = append(sessions, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if filter.Last > 0 && len(sessions) > filter.Last {
		sessions = sessions[len(sessions)-filter.Last:]
	}
	return sessions, nil
}

// UpsertBestRecord applies a completed round to the per-mode best record:
// WPM and accuracy keep their monotonic max, the session count increments.
func (s *Store) UpsertBestRecord(ctx context.Context, mode model.GameMode, wpm int, accuracy float64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO best_records (mode, best_wpm, best_accuracy, total_sessions)
		 VALUES (?, ?, ?, 1)
		 ON CONFLICT(mode) DO UPDATE SET
			best_wpm = MAX(best_wpm, excluded.best_wpm),
			best_accuracy = MAX(best_accuracy, excluded.best_accuracy),
			total_sessions = total_sessions + 1`,
		string(mode), wpm, accuracy,
	)
	return err
}

// GetBestRecords returns all per-mode best records.
func (s *Store) GetBestRecords(ctx context.Context) ([]model.BestRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT mode, best_wpm, best_accuracy, total_sessions FROM best_records ORDER BY mode ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.BestRecord
	for rows.Next() {
		var rec model.BestRecord
		var mode string
		if err := rows.Scan(&mode, &rec.BestWPM, &rec.BestAccuracy, &rec.TotalSessions); err != nil {
			return nil, err
		}
		rec.Mode = model.GameMode(mode)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// SaveWordList stores a custom word list and its words, replacing any
// previous list with the same id.
func (s *Store) SaveWordList(ctx context.Context, list model.WordList) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM words WHERE list_id = ?`, list.ID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO word_lists (id, name, description, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, description = excluded.description`,
		list.ID, list.Name, list.Description, list.CreatedAt.Format(time.RFC3339Nano),
	); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO words (id, list_id, japanese, reading, romaji, meaning, category, difficulty, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for _, w := range list.Words {
		if _, err = stmt.ExecContext(ctx, w.ID, list.ID, w.Japanese, w.Reading, w.Romaji, w.Meaning, w.Category, w.Difficulty, strings.Join(w.Tags, ",")); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListWordLists returns custom list metadata without loading words.
func (s *Store) ListWordLists(ctx context.Context) ([]model.WordList, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, created_at FROM word_lists ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var lists []model.WordList
	for rows.Next() {
		var list model.WordList
		var createdAt string
		if err := rows.Scan(&list.ID, &list.Name, &list.Description, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		list.CreatedAt = parsed
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lists, nil
}

// LoadWords returns the words of a custom list. An unknown id yields an
// empty slice, not an error.
func (s *Store) LoadWords(ctx context.Context, listID string) ([]model.Word, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, japanese, reading, romaji, meaning, category, difficulty, tags
		 FROM words WHERE list_id = ? ORDER BY id ASC`, listID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var words []model.Word
	for rows.Next() {
		var w model.Word
		var tags string
		if err := rows.Scan(&w.ID, &w.Japanese, &w.Reading, &w.Romaji, &w.Meaning, &w.Category, &w.Difficulty, &tags); err != nil {
			return nil, err
		}
		if tags != "" {
			w.Tags = strings.Split(tags, ",")
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// DeleteWordList removes a custom list and its words.
func (s *Store) DeleteWordList(ctx context.Context, listID string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM words WHERE list_id = ?`, listID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM word_lists WHERE id = ?`, listID); err != nil {
		return err
	}
	return tx.Commit()
}
