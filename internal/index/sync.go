package index

import (
	"context"
	"log/slog"
	"path"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/reelmd/internal/models"
	"github.com/starford/reelmd/internal/parser"
	"github.com/starford/reelmd/internal/storage"
	"github.com/starford/reelmd/internal/validator"
)

// Entry is everything the catalog stores about one script, plus the parse
// and validation results it was derived from.
type Entry struct {
	Row      ScriptRow
	Body     string
	Document models.Document
	Result   validator.Result
}

// Summarize parses data once, validates that parse and builds the catalog
// entry.
func Summarize(p string, data []byte) Entry {
	text := string(data)
	doc := parser.ParseFull(text)
	res := validator.ValidateDocument(doc, text)
	return Entry{
		Row: ScriptRow{
			Path:       p,
			Title:      title(p, doc),
			Checksum:   storage.Checksum(data),
			SceneCount: len(doc.Scenes),
			Duration:   doc.TotalDuration(),
			Errors:     len(res.Errors),
			Warnings:   len(res.Warnings),
			UpdatedAt:  time.Now().UTC(),
		},
		Body:     text,
		Document: doc,
		Result:   res,
	}
}

// title is the first chapter, else the first line of the first text scene,
// else the file name without extension.
func title(p string, doc models.Document) string {
	if len(doc.Chapters) > 0 {
		return doc.Chapters[0].Title
	}
	for _, s := range doc.Scenes {
		if t, ok := s.Content.(*models.Text); ok {
			line, _, _ := strings.Cut(strings.TrimSpace(t.Content), "\n")
			if line != "" {
				return line
			}
		}
	}
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// IndexFile summarizes data and upserts it.
func IndexFile(db ScriptIndex, p string, data []byte) (Entry, error) {
	e := Summarize(p, data)
	return e, db.UpsertScript(e.Row, e.Document.Chapters, e.Body)
}

// SyncStats counts what a Sync changed.
type SyncStats struct {
	Indexed   int
	Unchanged int
	Removed   int
}

// Sync walks the scripts directory and brings the catalog up to date:
//   - new or changed files are summarized and upserted
//   - files removed from disk are deleted from the catalog
//
// Changed files are read and summarized concurrently; writes are serial.
func Sync(ctx context.Context, db ScriptIndex, store storage.Provider, logger *slog.Logger) (SyncStats, error) {
	var stats SyncStats

	metas, err := store.List("")
	if err != nil {
		return stats, err
	}
	checksums, err := db.AllChecksums()
	if err != nil {
		return stats, err
	}

	disk := make(map[string]struct{}, len(metas))
	var changed []models.ScriptMetadata
	for _, m := range metas {
		disk[m.Path] = struct{}{}
		if checksums[m.Path] == m.Checksum {
			stats.Unchanged++
			continue
		}
		changed = append(changed, m)
	}

	entries := make([]*Entry, len(changed))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, m := range changed {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := store.Read(m.Path)
			if err != nil {
				logger.Warn("sync: read failed", slog.String("path", m.Path), slog.String("error", err.Error()))
				return nil
			}
			e := Summarize(m.Path, data)
			entries[i] = &e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	for _, e := range entries {
		if e == nil {
			continue
		}
		if err := db.UpsertScript(e.Row, e.Document.Chapters, e.Body); err != nil {
			logger.Warn("sync: index failed", slog.String("path", e.Row.Path), slog.String("error", err.Error()))
			continue
		}
		stats.Indexed++
		logger.Debug("sync: indexed", slog.String("path", e.Row.Path), slog.Int("scenes", e.Row.SceneCount))
	}

	for p := range checksums {
		if _, ok := disk[p]; ok {
			continue
		}
		if err := db.DeleteScript(p); err != nil {
			logger.Warn("sync: delete failed", slog.String("path", p), slog.String("error", err.Error()))
			continue
		}
		stats.Removed++
		logger.Debug("sync: removed stale", slog.String("path", p))
	}

	return stats, nil
}
