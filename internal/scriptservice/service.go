// Package scriptservice coordinates script storage, the catalog and the
// parser for the HTTP layer.
package scriptservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/starford/reelmd/internal/apperr"
	"github.com/starford/reelmd/internal/index"
	"github.com/starford/reelmd/internal/models"
	"github.com/starford/reelmd/internal/storage"
	"github.com/starford/reelmd/internal/timeline"
	"github.com/starford/reelmd/internal/validator"
)

// ScriptDetail is the full representation of a script.
type ScriptDetail struct {
	Path        string            `json:"path"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	Checksum    string            `json:"checksum"`
	Scenes      []models.Scene    `json:"scenes"`
	Chapters    []models.Chapter  `json:"chapters"`
	Timeline    timeline.Timeline `json:"timeline"`
	Diagnostics validator.Result  `json:"diagnostics"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ScriptListItem is one row of a listing.
type ScriptListItem struct {
	Path       string           `json:"path"`
	Title      string           `json:"title"`
	Checksum   string           `json:"checksum"`
	SceneCount int              `json:"sceneCount"`
	Duration   float64          `json:"duration"`
	Errors     int              `json:"errors"`
	Warnings   int              `json:"warnings"`
	Chapters   []models.Chapter `json:"chapters"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// Service coordinates storage and catalog operations.
type Service struct {
	store storage.Provider
	db    index.ScriptIndex
}

// NewService creates a script service.
func NewService(store storage.Provider, db index.ScriptIndex) *Service {
	return &Service{store: store, db: db}
}

// GetScript reads a script and returns it fully parsed.
func (s *Service) GetScript(_ context.Context, path string) (*ScriptDetail, error) {
	data, err := s.store.Read(path)
	if err != nil {
		return nil, err
	}
	return buildDetail(path, data), nil
}

// CreateScript writes a new script and indexes it.
func (s *Service) CreateScript(_ context.Context, path string, content []byte) (*ScriptDetail, error) {
	if !storage.IsScript(path) {
		return nil, fmt.Errorf("scriptservice: %q has no script extension: %w", path, apperr.ErrInvalidPath)
	}
	if _, err := s.store.Read(path); err == nil {
		return nil, apperr.ErrAlreadyExists
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	if err := s.store.Write(path, content); err != nil {
		return nil, err
	}
	if _, err := index.IndexFile(s.db, path, content); err != nil {
		return nil, err
	}
	return buildDetail(path, content), nil
}

// UpdateScript replaces a script. A non-empty ifMatch must equal the
// checksum of the current content.
func (s *Service) UpdateScript(_ context.Context, path string, content []byte, ifMatch string) (*ScriptDetail, error) {
	existing, err := s.store.Read(path)
	if err != nil {
		return nil, err
	}
	if ifMatch != "" && ifMatch != storage.Checksum(existing) {
		return nil, apperr.ErrConflict
	}
	if err := s.store.Write(path, content); err != nil {
		return nil, err
	}
	if _, err := index.IndexFile(s.db, path, content); err != nil {
		return nil, err
	}
	return buildDetail(path, content), nil
}

// MoveScript renames a script and re-indexes it under the new path.
func (s *Service) MoveScript(_ context.Context, from, to string) (*ScriptDetail, error) {
	if !storage.IsScript(to) {
		return nil, fmt.Errorf("scriptservice: %q has no script extension: %w", to, apperr.ErrInvalidPath)
	}
	if _, err := s.store.Read(to); err == nil {
		return nil, apperr.ErrAlreadyExists
	}
	if err := s.store.Move(from, to); err != nil {
		return nil, err
	}
	if err := s.db.DeleteScript(from); err != nil {
		return nil, err
	}
	data, err := s.store.Read(to)
	if err != nil {
		return nil, err
	}
	if _, err := index.IndexFile(s.db, to, data); err != nil {
		return nil, err
	}
	return buildDetail(to, data), nil
}

// DeleteScript removes a script from storage and the catalog.
func (s *Service) DeleteScript(_ context.Context, path string) error {
	if err := s.store.Delete(path); err != nil {
		return err
	}
	return s.db.DeleteScript(path)
}

// ListScripts returns a page of catalog entries with their chapters.
func (s *Service) ListScripts(_ context.Context, limit, offset int, sort string) ([]ScriptListItem, int, error) {
	rows, total, err := s.db.ListScripts(limit, offset, sort)
	if err != nil {
		return nil, 0, err
	}
	items := make([]ScriptListItem, len(rows))
	for i, r := range rows {
		chapters, err := s.db.Chapters(r.Path)
		if err != nil {
			return nil, 0, err
		}
		items[i] = ScriptListItem{
			Path:       r.Path,
			Title:      r.Title,
			Checksum:   r.Checksum,
			SceneCount: r.SceneCount,
			Duration:   r.Duration,
			Errors:     r.Errors,
			Warnings:   r.Warnings,
			Chapters:   chapters,
			UpdatedAt:  r.UpdatedAt,
		}
	}
	return items, total, nil
}

// Search delegates to the catalog.
func (s *Service) Search(_ context.Context, query string, limit int) ([]index.SearchResult, error) {
	return s.db.Search(query, limit)
}

func buildDetail(path string, data []byte) *ScriptDetail {
	e := index.Summarize(path, data)
	return &ScriptDetail{
		Path:        path,
		Title:       e.Row.Title,
		Content:     e.Body,
		Checksum:    e.Row.Checksum,
		Scenes:      e.Document.Scenes,
		Chapters:    e.Document.Chapters,
		Timeline:    timeline.Build(e.Document.Scenes),
		Diagnostics: e.Result,
		UpdatedAt:   e.Row.UpdatedAt,
	}
}
