package api

import (
	"net/http"

	"github.com/starford/reelmd/internal/parser"
	"github.com/starford/reelmd/internal/quickcheck"
	"github.com/starford/reelmd/internal/timeline"
	"github.com/starford/reelmd/internal/validator"
)

// The handlers in this file are stateless: they work on the markdown in the
// request body and never touch the catalog.

// Parse handles POST /parse.
//
//	@Summary		Parse script markdown into scenes
//	@Tags			markdown
//	@Accept			json
//	@Produce		json
//	@Param			body	body		MarkdownRequest	true	"Script text"
//	@Success		200		{object}	ParseResponse
//	@Failure		400		{object}	errResponse
//	@Router			/parse [post]
func Parse(w http.ResponseWriter, r *http.Request) {
	var req MarkdownRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	doc := parser.ParseFull(req.Markdown)
	writeJSON(w, http.StatusOK, ParseResponse{
		Scenes:        doc.Scenes,
		Chapters:      doc.Chapters,
		TotalDuration: doc.TotalDuration(),
	})
}

// Validate handles POST /validate.
//
//	@Summary		Validate script markdown
//	@Tags			markdown
//	@Accept			json
//	@Produce		json
//	@Param			body	body		MarkdownRequest	true	"Script text"
//	@Success		200		{object}	validator.Result
//	@Failure		400		{object}	errResponse
//	@Router			/validate [post]
func Validate(w http.ResponseWriter, r *http.Request) {
	var req MarkdownRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, validator.Validate(req.Markdown))
}

// Check handles POST /check.
//
//	@Summary		Line-level syntax check for editors
//	@Tags			markdown
//	@Accept			json
//	@Produce		json
//	@Param			body	body		MarkdownRequest	true	"Script text"
//	@Success		200		{object}	quickcheck.Report
//	@Failure		400		{object}	errResponse
//	@Router			/check [post]
func Check(w http.ResponseWriter, r *http.Request) {
	var req MarkdownRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, quickcheck.Check(req.Markdown))
}

// Suggest handles POST /suggest.
//
//	@Summary		Directive completions for a partial script
//	@Tags			markdown
//	@Accept			json
//	@Produce		json
//	@Param			body	body		MarkdownRequest	true	"Script text up to the cursor"
//	@Success		200		{object}	SuggestResponse
//	@Failure		400		{object}	errResponse
//	@Router			/suggest [post]
func Suggest(w http.ResponseWriter, r *http.Request) {
	var req MarkdownRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, SuggestResponse{Suggestions: quickcheck.Suggest(req.Markdown)})
}

// Timeline handles POST /timeline.
//
//	@Summary		Timeline segments for script markdown
//	@Tags			markdown
//	@Accept			json
//	@Produce		json
//	@Param			body	body		MarkdownRequest	true	"Script text"
//	@Success		200		{object}	timeline.Timeline
//	@Failure		400		{object}	errResponse
//	@Router			/timeline [post]
func Timeline(w http.ResponseWriter, r *http.Request) {
	var req MarkdownRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, timeline.Build(parser.Parse(req.Markdown)))
}

// SceneAt handles POST /scene-at.
//
//	@Summary		Find the scene playing at a time
//	@Tags			markdown
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SceneAtRequest	true	"Script text and time in seconds"
//	@Success		200		{object}	SceneAtResponse
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Router			/scene-at [post]
func SceneAt(w http.ResponseWriter, r *http.Request) {
	var req SceneAtRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	pos, ok := timeline.SceneAt(parser.Parse(req.Markdown), req.Time)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("no scene at that time"))
		return
	}
	writeJSON(w, http.StatusOK, pos)
}
