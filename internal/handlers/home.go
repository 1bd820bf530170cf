package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"herohud/internal/game"
	"herohud/internal/viewmodel"
	"herohud/views/pages"
)

type HomeHandler struct {
	store  *game.Store
	logger zerolog.Logger
}

func NewHomeHandler(store *game.Store, logger zerolog.Logger) *HomeHandler {
	return &HomeHandler{
		store:  store,
		logger: logger.With().Str("component", "HomeHandler").Logger(),
	}
}

func (h *HomeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Post("/sessions", h.createSession)
}

func (h *HomeHandler) home(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.HomePage(viewmodel.HomePage{
		Title:    pageTitle,
		Sessions: h.store.Len(),
	}))
}

func (h *HomeHandler) createSession(w http.ResponseWriter, r *http.Request) {
	sess := h.store.CreateSession()
	sessionsActive.Set(float64(h.store.Len()))
	h.logger.Info().Str("session", sess.ID).Msg("session created")

	if wantsJSON(r) {
		w.Header().Set("Location", "/session/"+sess.ID)
		writeJSON(w, http.StatusCreated, map[string]any{
			"id":       sess.ID,
			"snapshot": sess.Snapshot(),
		})
		return
	}
	http.Redirect(w, r, "/session/"+sess.ID, http.StatusSeeOther)
}
