package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/reelmd/internal/scriptservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *scriptservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()

	r.Use(AuthMiddleware(authEnabled, token))

	// Scripts CRUD.
	r.Get("/scripts", h.ListScripts)
	r.Post("/scripts", h.CreateScript)
	r.Get("/scripts/*", h.GetScript)
	r.Put("/scripts/*", h.UpdateScript)
	r.Patch("/scripts/*", h.MoveScript)
	r.Delete("/scripts/*", h.DeleteScript)

	r.Get("/search", h.Search)

	// Stateless markdown tooling.
	r.Post("/parse", Parse)
	r.Post("/validate", Validate)
	r.Post("/check", Check)
	r.Post("/suggest", Suggest)
	r.Post("/timeline", Timeline)
	r.Post("/scene-at", SceneAt)

	// SSE endpoint (protected by the same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
