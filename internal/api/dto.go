package api

import (
	"github.com/starford/reelmd/internal/models"
	"github.com/starford/reelmd/internal/scriptservice"
	"github.com/starford/reelmd/internal/timeline"
)

// CreateScriptRequest is the request body for creating a script.
type CreateScriptRequest struct {
	Path    string `json:"path" example:"talks/intro.md" validate:"required"`
	Content string `json:"content" example:"!scene\n!text\nHello" validate:"required"`
}

// UpdateScriptRequest is the request body for replacing a script.
type UpdateScriptRequest struct {
	Content string `json:"content" example:"!scene\n!text\nUpdated" validate:"required"`
}

// MoveScriptRequest is the request body for renaming a script.
type MoveScriptRequest struct {
	To string `json:"to" example:"talks/renamed.md" validate:"required"`
}

// ScriptDetail is the full script response (aliased from the domain layer).
type ScriptDetail = scriptservice.ScriptDetail

// ScriptListItem is one row of a listing (aliased from the domain layer).
type ScriptListItem = scriptservice.ScriptListItem

// ScriptListResponse wraps paginated script listings.
type ScriptListResponse struct {
	Scripts []ScriptListItem `json:"scripts" validate:"required"`
	Total   int              `json:"total" example:"42" validate:"required"`
}

// SearchResult is a single search hit in the API response.
type SearchResult struct {
	Path    string `json:"path" example:"talks/intro.md" validate:"required"`
	Title   string `json:"title" example:"Intro" validate:"required"`
	Snippet string `json:"snippet" example:"!scene ..." validate:"required"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []SearchResult `json:"results" validate:"required"`
}

// MarkdownRequest carries raw script text for the stateless endpoints.
type MarkdownRequest struct {
	Markdown string `json:"markdown" example:"!scene\n!text\nHello"`
}

// ParseResponse is the result of POST /parse.
type ParseResponse struct {
	Scenes        []models.Scene   `json:"scenes"`
	Chapters      []models.Chapter `json:"chapters"`
	TotalDuration float64          `json:"totalDuration" example:"12.5"`
}

// SuggestResponse is the result of POST /suggest.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// SceneAtRequest asks which scene plays at Time seconds.
type SceneAtRequest struct {
	Markdown string  `json:"markdown"`
	Time     float64 `json:"time" example:"4.2"`
}

// SceneAtResponse is the result of POST /scene-at.
type SceneAtResponse = timeline.Position
