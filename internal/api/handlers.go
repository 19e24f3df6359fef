package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/starford/reelmd/internal/apperr"
	"github.com/starford/reelmd/internal/scriptservice"
)

// Handler holds the script catalog route handlers.
type Handler struct {
	svc *scriptservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *scriptservice.Service) *Handler {
	return &Handler{svc: svc}
}

// scriptPath extracts the script path from the URL (everything after /scripts/).
// Supports encoded slashes from OpenAPI clients (e.g. talks%2Fintro.md).
func scriptPath(r *http.Request) string {
	raw := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if raw == "" {
		return ""
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// writeServiceError maps domain errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, op, path string, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case errors.Is(err, apperr.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorBody("script already exists"))
	case errors.Is(err, apperr.ErrConflict):
		writeJSON(w, http.StatusConflict, errorBody("checksum mismatch"))
	case errors.Is(err, apperr.ErrInvalidPath):
		writeJSON(w, http.StatusBadRequest, errorBody("invalid path"))
	default:
		slog.Error("api: "+op+" failed", slog.String("path", path), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

// ListScripts handles GET /scripts.
//
//	@Summary		List scripts with pagination
//	@Tags			scripts
//	@Produce		json
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Param			sort	query		string	false	"Sort field"	Enums(path, updated, duration)
//	@Success		200		{object}	ScriptListResponse
//	@Security		BearerAuth
//	@Router			/scripts [get]
func (h *Handler) ListScripts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	items, total, err := h.svc.ListScripts(r.Context(), limit, offset, q.Get("sort"))
	if err != nil {
		writeServiceError(w, "list scripts", "", err)
		return
	}
	writeJSON(w, http.StatusOK, ScriptListResponse{Scripts: items, Total: total})
}

// GetScript handles GET /scripts/*.
//
//	@Summary		Get a parsed script by path
//	@Tags			scripts
//	@Produce		json
//	@Param			path	path		string	true	"Script path"
//	@Success		200		{object}	ScriptDetail
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/scripts/{path} [get]
func (h *Handler) GetScript(w http.ResponseWriter, r *http.Request) {
	path := scriptPath(r)
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}
	script, err := h.svc.GetScript(r.Context(), path)
	if err != nil {
		writeServiceError(w, "get script", path, err)
		return
	}
	w.Header().Set("ETag", `"`+script.Checksum+`"`)
	writeJSON(w, http.StatusOK, script)
}

// CreateScript handles POST /scripts.
//
//	@Summary		Create a new script
//	@Tags			scripts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateScriptRequest	true	"Script to create"
//	@Success		201		{object}	ScriptDetail
//	@Failure		400		{object}	errResponse
//	@Failure		409		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/scripts [post]
func (h *Handler) CreateScript(w http.ResponseWriter, r *http.Request) {
	var req CreateScriptRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Path == "" || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path and content are required"))
		return
	}
	script, err := h.svc.CreateScript(r.Context(), req.Path, []byte(req.Content))
	if err != nil {
		writeServiceError(w, "create script", req.Path, err)
		return
	}
	writeJSON(w, http.StatusCreated, script)
}

// UpdateScript handles PUT /scripts/*.
//
//	@Summary		Replace a script with optimistic concurrency
//	@Tags			scripts
//	@Accept			json
//	@Produce		json
//	@Param			path		path	string				true	"Script path"
//	@Param			If-Match	header	string				false	"SHA-256 checksum of the current content"
//	@Param			body		body	UpdateScriptRequest	true	"New content"
//	@Success		200		{object}	ScriptDetail
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Failure		409		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/scripts/{path} [put]
func (h *Handler) UpdateScript(w http.ResponseWriter, r *http.Request) {
	path := scriptPath(r)
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}
	var req UpdateScriptRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Content == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("content is required"))
		return
	}

	// Strip surrounding quotes if present (standard ETag format).
	ifMatch := strings.Trim(r.Header.Get("If-Match"), `"`)

	script, err := h.svc.UpdateScript(r.Context(), path, []byte(req.Content), ifMatch)
	if err != nil {
		writeServiceError(w, "update script", path, err)
		return
	}
	w.Header().Set("ETag", `"`+script.Checksum+`"`)
	writeJSON(w, http.StatusOK, script)
}

// MoveScript handles PATCH /scripts/*.
//
//	@Summary		Rename a script
//	@Tags			scripts
//	@Accept			json
//	@Produce		json
//	@Param			path	path		string				true	"Current script path"
//	@Param			body	body		MoveScriptRequest	true	"New path"
//	@Success		200		{object}	ScriptDetail
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Failure		409		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/scripts/{path} [patch]
func (h *Handler) MoveScript(w http.ResponseWriter, r *http.Request) {
	path := scriptPath(r)
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}
	var req MoveScriptRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.To == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("to is required"))
		return
	}
	script, err := h.svc.MoveScript(r.Context(), path, req.To)
	if err != nil {
		writeServiceError(w, "move script", path, err)
		return
	}
	writeJSON(w, http.StatusOK, script)
}

// DeleteScript handles DELETE /scripts/*.
//
//	@Summary		Delete a script
//	@Tags			scripts
//	@Param			path	path	string	true	"Script path"
//	@Success		204		"Script deleted"
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/scripts/{path} [delete]
func (h *Handler) DeleteScript(w http.ResponseWriter, r *http.Request) {
	path := scriptPath(r)
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}
	if err := h.svc.DeleteScript(r.Context(), path); err != nil {
		writeServiceError(w, "delete script", path, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Search handles GET /search.
//
//	@Summary		Search script titles, chapters and text
//	@Tags			search
//	@Produce		json
//	@Param			q		query		string	true	"Search query"
//	@Param			limit	query		int		false	"Max results"
//	@Success		200		{object}	SearchResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	hits, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		slog.Error("api: search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	results := make([]SearchResult, len(hits))
	for i, hit := range hits {
		results[i] = SearchResult{Path: hit.Path, Title: hit.Title, Snippet: hit.Snippet}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}
