// Package server exposes an Engine over HTTP and WebSocket.
//
// Endpoints:
//
//	POST   /v1/normalize        {"text": "..."}                → {"written": "..."}
//	POST   /v1/sentence         {"text": "...", "max_span": n} → {"written": "..."}
//	POST   /v1/extract          {"text": "...", "max_span": n} → {"matches": [...]}
//	GET    /v1/rules            rule list as JSON, or TOML with ?format=toml
//	PUT    /v1/rules            one rule as JSON, or a TOML rule file
//	DELETE /v1/rules            remove every rule
//	DELETE /v1/rules/{spoken}   remove one rule
//	GET    /v1/version
//	GET    /v1/stream           WebSocket, one sentence per text message
//	GET    /healthz
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/az-ai-labs/en-itn/internal/logging"
	"github.com/az-ai-labs/en-itn/normalize"
	"github.com/az-ai-labs/en-itn/rules"
	"github.com/gorilla/websocket"
)

// maxBodyBytes caps request bodies. It leaves room for JSON escaping around
// the engine's own input limit.
const maxBodyBytes = 4 << 20

// Server implements all HTTP endpoints.
type Server struct {
	engine   *normalize.Engine
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// New returns a server for engine. A nil logger discards output.
func New(engine *normalize.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		engine: engine,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

// Register mounts routes on the given mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", s.health)
	mux.HandleFunc("GET /v1/version", s.version)
	mux.HandleFunc("POST /v1/normalize", s.normalize)
	mux.HandleFunc("POST /v1/sentence", s.sentence)
	mux.HandleFunc("POST /v1/extract", s.extract)
	mux.HandleFunc("GET /v1/rules", s.listRules)
	mux.HandleFunc("PUT /v1/rules", s.putRules)
	mux.HandleFunc("DELETE /v1/rules", s.clearRules)
	mux.HandleFunc("DELETE /v1/rules/{spoken}", s.deleteRule)
	mux.HandleFunc("GET /v1/stream", s.stream)
}

// Handler returns all routes wrapped in request-id and logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return logging.CombinedMiddleware(s.logger, mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", addr, "version", normalize.Version())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// ---------- request and response bodies ----------

type textRequest struct {
	Text    string `json:"text"`
	MaxSpan uint32 `json:"max_span,omitempty"`
}

type textResponse struct {
	Text    string `json:"text"`
	Written string `json:"written"`
}

type extractResponse struct {
	Text    string            `json:"text"`
	Matches []normalize.Match `json:"matches"`
}

type rulesResponse struct {
	Count uint32       `json:"count"`
	Rules []rules.Rule `json:"rules"`
}

// ---------- endpoints ----------

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) version(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": normalize.Version()})
}

func (s *Server) normalize(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Text: req.Text, Written: s.engine.Normalize(req.Text)})
}

func (s *Server) sentence(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}
	var out string
	if req.MaxSpan > 0 {
		out = s.engine.SentenceMaxSpan(req.Text, req.MaxSpan)
	} else {
		out = s.engine.Sentence(req.Text)
	}
	writeJSON(w, http.StatusOK, textResponse{Text: req.Text, Written: out})
}

func (s *Server) extract(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}
	matches := s.engine.Extract(req.Text, req.MaxSpan)
	if matches == nil {
		matches = []normalize.Match{}
	}
	writeJSON(w, http.StatusOK, extractResponse{Text: req.Text, Matches: matches})
}

func (s *Server) listRules(w http.ResponseWriter, r *http.Request) {
	reg := s.engine.Rules()
	if r.URL.Query().Get("format") == "toml" {
		w.Header().Set("Content-Type", "application/toml")
		if err := reg.Save(w); err != nil {
			logging.FromContext(r.Context(), s.logger).Error("writing rules", "err", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, rulesResponse{Count: s.engine.RuleCount(), Rules: reg.All()})
}

// putRules adds one JSON rule, or every rule of a TOML rule file when the
// request is sent as application/toml.
func (s *Server) putRules(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context(), s.logger)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/toml" {
		n, err := s.engine.Rules().Load(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Info("rules loaded", "count", n)
		writeJSON(w, http.StatusOK, map[string]any{"added": n, "count": s.engine.RuleCount()})
		return
	}

	var rule rules.Rule
	if !s.decode(w, r, &rule) {
		return
	}
	if !s.engine.AddRule(rule.Spoken, rule.Written) {
		writeErr(w, http.StatusBadRequest, rules.ErrEmptySpoken.Error())
		return
	}
	log.Info("rule added", "spoken", rule.Spoken)
	writeJSON(w, http.StatusOK, map[string]any{"added": 1, "count": s.engine.RuleCount()})
}

func (s *Server) clearRules(w http.ResponseWriter, r *http.Request) {
	s.engine.ClearRules()
	logging.FromContext(r.Context(), s.logger).Info("rules cleared")
	writeJSON(w, http.StatusOK, map[string]any{"count": 0})
}

func (s *Server) deleteRule(w http.ResponseWriter, r *http.Request) {
	spoken := r.PathValue("spoken")
	if !s.engine.RemoveRule(spoken) {
		writeErr(w, http.StatusNotFound, fmt.Sprintf("no rule for %q", spoken))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"removed": spoken, "count": s.engine.RuleCount()})
}

// ---------- helpers ----------

// decode reads a JSON body into v, writing a 400 response on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		msg := "invalid JSON body"
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			msg = "request body too large"
		} else if errors.Is(err, io.EOF) {
			msg = "empty request body"
		}
		logging.FromContext(r.Context(), s.logger).Debug("bad request", "path", r.URL.Path, "err", err)
		writeErr(w, http.StatusBadRequest, msg)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
