// Package web is the presentation shell: a single-page chat UI backed by
// per-session transcripts. A transcript is append-only, owned by its session,
// and lives for the life of the process.
package web

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"sync"

	"github.com/benmartel/emissary/internal/engine"
	"github.com/rs/zerolog"
)

const sessionCookie = "emissary_session"

// session owns one visitor's transcript. A turn has a single writer; the
// mutex only covers concurrent requests arriving on the same cookie.
type session struct {
	mu         sync.Mutex
	transcript []engine.Turn
}

// Server serves the chat page and its JSON API.
type Server struct {
	engine *engine.Engine
	name   string
	logger zerolog.Logger
	tmpl   *template.Template

	mu       sync.Mutex
	sessions map[string]*session
}

// NewServer creates the presentation shell for the given engine.
func NewServer(eng *engine.Engine, name string, logger zerolog.Logger) *Server {
	return &Server{
		engine:   eng,
		name:     name,
		logger:   logger,
		tmpl:     template.Must(template.New("page").Parse(pageTemplate)),
		sessions: make(map[string]*session),
	}
}

// Handler returns the route mux for the shell.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("POST /api/chat", s.handleChat)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, struct{ Name string }{Name: s.name}); err != nil {
		s.logger.Error().Err(err).Msg("failed to render chat page")
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	sess := s.sessionFor(w, r)

	// The engine gets a read-only copy; the transcript itself is appended to
	// only after the turn completes, so a failed turn still records both the
	// user message and the fallback reply.
	sess.mu.Lock()
	history := append([]engine.Turn(nil), sess.transcript...)
	sess.mu.Unlock()

	reply := s.engine.Chat(r.Context(), req.Message, history)

	sess.mu.Lock()
	sess.transcript = append(sess.transcript,
		engine.Turn{Role: engine.RoleUser, Content: req.Message},
		engine.Turn{Role: engine.RoleAssistant, Content: reply},
	)
	sess.mu.Unlock()

	s.writeJSON(w, chatResponse{Reply: reply})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)

	sess.mu.Lock()
	transcript := append([]engine.Turn(nil), sess.transcript...)
	sess.mu.Unlock()

	if transcript == nil {
		transcript = []engine.Turn{}
	}
	s.writeJSON(w, transcript)
}

// sessionFor returns the session for the request's cookie, creating the
// session (and the cookie) when absent.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) *session {
	id := ""
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}
	if id == "" {
		id = newSessionID()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{}
		s.sessions[id] = sess
	}
	return sess
}

func newSessionID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}
