package index

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/starford/reelmd/internal/apperr"
	"github.com/starford/reelmd/internal/models"
)

// ScriptRow is a row in the scripts table.
type ScriptRow struct {
	Path       string
	Title      string
	Checksum   string
	SceneCount int
	Duration   float64
	Errors     int
	Warnings   int
	UpdatedAt  time.Time
}

// SearchResult is one search hit.
type SearchResult struct {
	Path    string
	Title   string
	Snippet string
}

// Sort orders accepted by ListScripts.
const (
	SortPath     = "path"
	SortUpdated  = "updated"
	SortDuration = "duration"
)

var sortColumns = map[string]string{
	SortPath:     "path ASC",
	SortUpdated:  "updated_at DESC",
	SortDuration: "duration DESC",
}

const scriptColumns = `path, title, checksum, scene_count, duration, errors, warnings, updated_at`

// UpsertScript inserts or replaces a script and its chapters in one transaction.
func (db *DB) UpsertScript(s ScriptRow, chapters []models.Chapter, body string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.Exec(`
		INSERT INTO scripts (path, title, checksum, scene_count, duration, errors, warnings, body, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			title       = excluded.title,
			checksum    = excluded.checksum,
			scene_count = excluded.scene_count,
			duration    = excluded.duration,
			errors      = excluded.errors,
			warnings    = excluded.warnings,
			body        = excluded.body,
			updated_at  = excluded.updated_at
	`, s.Path, s.Title, s.Checksum, s.SceneCount, s.Duration, s.Errors, s.Warnings, body, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("index: upsert script: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM chapters WHERE path = ?`, s.Path); err != nil {
		return fmt.Errorf("index: clear chapters: %w", err)
	}
	if len(chapters) > 0 {
		stmt, err := tx.Prepare(`INSERT INTO chapters (path, position, title, time) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("index: prepare chapter insert: %w", err)
		}
		defer stmt.Close()
		for i, c := range chapters {
			if _, err := stmt.Exec(s.Path, i, c.Title, c.Time); err != nil {
				return fmt.Errorf("index: insert chapter: %w", err)
			}
		}
	}

	return tx.Commit()
}

// DeleteScript removes a script and its chapters.
func (db *DB) DeleteScript(path string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(`DELETE FROM chapters WHERE path = ?`, path); err != nil {
		return fmt.Errorf("index: delete chapters: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM scripts WHERE path = ?`, path); err != nil {
		return fmt.Errorf("index: delete script: %w", err)
	}
	return tx.Commit()
}

// GetChecksum returns the stored checksum for a script, or "" if it is not indexed.
func (db *DB) GetChecksum(path string) (string, error) {
	var cs string
	err := db.conn.QueryRow(`SELECT checksum FROM scripts WHERE path = ?`, path).Scan(&cs)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("index: get checksum: %w", err)
	}
	return cs, nil
}

// GetScript returns one catalog row or apperr.ErrNotFound.
func (db *DB) GetScript(path string) (*ScriptRow, error) {
	row := db.conn.QueryRow(`SELECT `+scriptColumns+` FROM scripts WHERE path = ?`, path)
	s, err := scanScript(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("index: get script: %w", err)
	}
	return &s, nil
}

// ListScripts returns a page of scripts and the total count. Unknown sort
// values fall back to path order.
func (db *DB) ListScripts(limit, offset int, sort string) ([]ScriptRow, int, error) {
	if limit <= 0 {
		limit = 50
	}
	order, ok := sortColumns[sort]
	if !ok {
		order = sortColumns[SortPath]
	}

	var total int
	if err := db.conn.QueryRow(`SELECT count(*) FROM scripts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("index: count scripts: %w", err)
	}

	rows, err := db.conn.Query(`SELECT `+scriptColumns+` FROM scripts ORDER BY `+order+` LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("index: list scripts: %w", err)
	}
	defer rows.Close()

	out := []ScriptRow{}
	for rows.Next() {
		s, err := scanScript(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

// Chapters returns the chapters of a script in document order.
func (db *DB) Chapters(path string) ([]models.Chapter, error) {
	rows, err := db.conn.Query(`SELECT title, time FROM chapters WHERE path = ? ORDER BY position`, path)
	if err != nil {
		return nil, fmt.Errorf("index: chapters: %w", err)
	}
	defer rows.Close()

	out := []models.Chapter{}
	for rows.Next() {
		var c models.Chapter
		if err := rows.Scan(&c.Title, &c.Time); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Search matches query against titles, chapter titles and script text.
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	like := "%" + query + "%"
	rows, err := db.conn.Query(`
		SELECT s.path, s.title, substr(s.body, 1, 200)
		FROM scripts s
		WHERE s.title LIKE ? OR s.body LIKE ?
		   OR EXISTS (SELECT 1 FROM chapters c WHERE c.path = s.path AND c.title LIKE ?)
		ORDER BY s.path
		LIMIT ?
	`, like, like, like, limit)
	if err != nil {
		return nil, fmt.Errorf("index: search: %w", err)
	}
	defer rows.Close()

	out := []SearchResult{}
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.Path, &r.Title, &r.Snippet); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AllChecksums returns path → checksum for every indexed script.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM scripts`)
	if err != nil {
		return nil, fmt.Errorf("index: all checksums: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScript(sc scanner) (ScriptRow, error) {
	var s ScriptRow
	err := sc.Scan(&s.Path, &s.Title, &s.Checksum, &s.SceneCount, &s.Duration, &s.Errors, &s.Warnings, &s.UpdatedAt)
	return s, err
}
