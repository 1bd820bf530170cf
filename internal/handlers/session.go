package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"herohud/internal/game"
	"herohud/internal/viewmodel"
	"herohud/views/components"
	"herohud/views/pages"
)

const pageTitle = "Hero HUD"

type SessionHandler struct {
	store   *game.Store
	baseURL string
	logger  zerolog.Logger
}

func NewSessionHandler(store *game.Store, baseURL string, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		store:   store,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		logger:  logger.With().Str("component", "SessionHandler").Logger(),
	}
}

func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Route("/session/{id}", func(r chi.Router) {
		r.Get("/", h.sessionPage)
		r.Delete("/", h.endSession)
		r.Post("/command", h.command)
		r.Get("/hud", h.hudFragment)
		r.Get("/snapshot", h.snapshot)
		r.Get("/stats", h.stats)
		r.Get("/stream", h.stream)
		r.Get("/ws", h.websocket)
	})
}

func (h *SessionHandler) lookup(w http.ResponseWriter, r *http.Request) (*game.Session, bool) {
	sess, ok := h.store.GetSession(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return nil, false
	}
	return sess, true
}

func (h *SessionHandler) sessionPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	data := viewmodel.SessionPage{
		Title:     pageTitle,
		SessionID: sess.ID,
		InviteURL: h.inviteURL(r, sess.ID),
		HUD:       buildHUD(sess.ID, sess.Snapshot(), nil, ""),
		Commands:  commandOptions(),
	}
	render(w, r, pages.SessionPage(data))
}

func (h *SessionHandler) endSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.store.EndSession(id) {
		http.NotFound(w, r)
		return
	}
	sessionsActive.Set(float64(h.store.Len()))
	h.logger.Info().Str("session", id).Msg("session ended")
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) command(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	cmd, err := commandFromRequest(w, r)
	if err != nil {
		commandsTotal.WithLabelValues("", errorKind(err)).Inc()
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	update, err := h.apply(sess, cmd)

	switch {
	case wantsJSON(r):
		status := http.StatusOK
		if err != nil {
			status = statusFor(err)
		}
		writeJSON(w, status, update)
	case r.Header.Get("Hx-Request") == "true":
		w.Header().Set("Hx-Retarget", "#hud")
		w.Header().Set("Hx-Reswap", "outerHTML")
		render(w, r, components.HUD(buildHUD(sess.ID, update.Snapshot, update.Events, update.Error)))
	case err != nil:
		http.Error(w, err.Error(), statusFor(err))
	default:
		http.Redirect(w, r, "/session/"+sess.ID, http.StatusSeeOther)
	}
}

// apply runs one action against the session and records it. The session
// itself fans the result out to live renderers.
func (h *SessionHandler) apply(sess *game.Session, cmd game.Command) (game.Update, error) {
	update, err := sess.Apply(cmd)
	observeUpdate(update, err)
	logger := h.logger.With().Str("session", sess.ID).Str("command", string(cmd.Kind)).Logger()
	if err != nil {
		logger.Info().Err(err).Msg("command rejected")
		return update, err
	}
	for _, ev := range update.Events {
		logger.Info().Str("event", string(ev.Kind)).Msg(ev.Message())
	}
	logger.Debug().Str("status", string(update.Snapshot.Status)).Msg("command applied")
	return update, nil
}

func (h *SessionHandler) hudFragment(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	render(w, r, components.HUD(buildHUD(sess.ID, sess.Snapshot(), nil, "")))
}

func (h *SessionHandler) snapshot(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (h *SessionHandler) stats(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	update, _ := h.apply(sess, game.Command{Kind: game.CmdShowStats})
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(update.Snapshot.Stats()))
}

func (h *SessionHandler) stream(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.lookup(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	hub, ok := h.store.Broadcaster(sess.ID)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)
	streamsActive.WithLabelValues("sse").Inc()
	defer streamsActive.WithLabelValues("sse").Dec()

	writeSSE(w, "hud", renderToString(r, components.HUD(buildHUD(sess.ID, sess.Snapshot(), nil, ""))))
	flusher.Flush()

	keepAlive := time.NewTicker(25 * time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case update, open := <-sub:
			if !open {
				return
			}
			html := renderToString(r, components.HUD(buildHUD(sess.ID, update.Snapshot, update.Events, "")))
			writeSSE(w, "hud", html)
			flusher.Flush()
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keepalive\n\n"))
			flusher.Flush()
		}
	}
}

func (h *SessionHandler) inviteURL(r *http.Request, id string) string {
	if h.baseURL != "" {
		return h.baseURL + "/session/" + id
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/session/" + id
}

// commandFromRequest decodes a command from a JSON body or form values. Both
// bodies are capped at maxMessageSize, like websocket frames.
func commandFromRequest(w http.ResponseWriter, r *http.Request) (game.Command, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var cmd game.Command
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageSize)).Decode(&cmd); err != nil {
			return game.Command{}, fmt.Errorf("%w: %v", game.ErrInvalidInput, err)
		}
		kind, err := game.ParseCommandKind(string(cmd.Kind))
		if err != nil {
			return game.Command{}, err
		}
		cmd.Kind = kind
		return cmd, nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxMessageSize)
	if err := r.ParseForm(); err != nil {
		return game.Command{}, fmt.Errorf("%w: %v", game.ErrInvalidInput, err)
	}
	kind, err := game.ParseCommandKind(r.FormValue("command"))
	if err != nil {
		return game.Command{}, err
	}
	cmd := game.Command{Kind: kind, Name: r.FormValue("name")}
	if raw := strings.TrimSpace(r.FormValue("amount")); raw != "" {
		amount, err := strconv.Atoi(raw)
		if err != nil {
			return game.Command{}, fmt.Errorf("%w: amount %q is not a number", game.ErrInvalidInput, raw)
		}
		cmd.Amount = &amount
	}
	return cmd, nil
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSSE(w http.ResponseWriter, event string, data string) {
	_, _ = w.Write([]byte("event: " + event + "\n"))
	for _, line := range strings.Split(data, "\n") {
		_, _ = w.Write([]byte("data: " + line + "\n"))
	}
	_, _ = w.Write([]byte("\n"))
}
