// Package server exposes the game master over HTTP for analysis tools.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"kalah/game"
	"kalah/gamemaster"
	"kalah/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type PlayRequest struct {
	Pockets []int `json:"pockets"`
}

type TestRequest struct {
	Pocket int `json:"pocket"`
}

type GameResponse struct {
	Game     game.Game `json:"game"`
	Rendered string    `json:"rendered"`
}

type Handler struct {
	gm *gamemaster.GameMaster
}

func NewHandler(gm *gamemaster.GameMaster) *Handler {
	return &Handler{gm: gm}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", h.HandleHealth)
	r.Route("/game", func(r chi.Router) {
		r.Get("/", h.HandleGetGame)
		r.Put("/", h.HandleSetBoard)
		r.Post("/reset", h.HandleReset)
		r.Post("/stash", h.HandleStash)
		r.Post("/load", h.HandleLoad)
	})
	r.Post("/play", h.HandlePlay)
	r.Post("/test", h.HandleTest)
	r.Get("/tree", h.HandleTree)
	r.Get("/analyze", h.HandleAnalyze)
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("server is running on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	writeGame(w, h.gm.Game())
}

func (h *Handler) HandleSetBoard(w http.ResponseWriter, r *http.Request) {
	var board game.Board
	if err := json.NewDecoder(r.Body).Decode(&board); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	g, err := h.gm.SetBoard(board)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeGame(w, g)
}

func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	writeGame(w, h.gm.Reset())
}

func (h *Handler) HandleStash(w http.ResponseWriter, r *http.Request) {
	if err := h.gm.Stash(); err != nil {
		log.Error().Err(err).Msg("failed to stash game")
		writeJSONError(w, http.StatusInternalServerError, "Failed to stash game")
		return
	}
	writeGame(w, h.gm.Game())
}

func (h *Handler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	g, err := h.gm.Load()
	if errors.Is(err, storage.ErrNoSnapshot) {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to load game")
		writeJSONError(w, http.StatusInternalServerError, "Failed to load game")
		return
	}
	writeGame(w, g)
}

func (h *Handler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if len(req.Pockets) == 0 {
		writeJSONError(w, http.StatusBadRequest, "No pockets to play")
		return
	}
	g, err := h.gm.PlaySequence(req.Pockets)
	if err != nil {
		writeMoveError(w, err)
		return
	}
	writeGame(w, g)
}

func (h *Handler) HandleTest(w http.ResponseWriter, r *http.Request) {
	var req TestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	g, err := h.gm.TestMove(req.Pocket)
	if err != nil {
		writeMoveError(w, err)
		return
	}
	writeGame(w, g)
}

func (h *Handler) HandleTree(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.gm.GenerateTree())
}

func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	recommendation, err := h.gm.BestSequence()
	if err != nil {
		log.Error().Err(err).Msg("failed to analyze game")
		writeJSONError(w, http.StatusInternalServerError, "Failed to analyze game")
		return
	}
	writeJSON(w, http.StatusOK, recommendation)
}

// writeMoveError maps rejected moves to client errors.
func writeMoveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gamemaster.ErrGameOver):
		writeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, game.ErrWrongPlayer),
		errors.Is(err, game.ErrEmptyPocket),
		errors.Is(err, game.ErrStorePocket),
		errors.Is(err, game.ErrOutOfBoundsPocket):
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Error().Err(err).Msg("failed to play move")
		writeJSONError(w, http.StatusInternalServerError, "Failed to play move")
	}
}

func writeGame(w http.ResponseWriter, g game.Game) {
	writeJSON(w, http.StatusOK, GameResponse{Game: g, Rendered: g.String()})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("writeJSON encode error")
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
	log.Debug().Msgf("writeJSONError: %s", msg)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
