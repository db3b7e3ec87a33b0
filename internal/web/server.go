// Package web serves the browser front end: an HTML page, a JSON
// calculation API, and a WebSocket channel. Each browser gets its own
// variable namespace, keyed by a session cookie.
package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/chongchonghe/acap/internal/engine"
	"github.com/chongchonghe/acap/internal/logger"
	"github.com/chongchonghe/acap/internal/repl"
)

const sessionCookie = "acap_session"

// Server is the web front end.
type Server struct {
	addr       string
	calc       *engine.Calculator
	httpServer *http.Server
	hub        *Hub
	log        *logger.Logger

	mu       sync.Mutex
	sessions map[string]*repl.Session
}

// NewServer creates a web server listening on localhost at the given port.
func NewServer(calc *engine.Calculator, port int) *Server {
	return &Server{
		addr:     fmt.Sprintf("localhost:%d", port),
		calc:     calc,
		hub:      NewHub(),
		log:      logger.Global().WithTag("web"),
		sessions: make(map[string]*repl.Session),
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()
	router.GET("/", s.handleIndex)
	router.GET("/health", s.handleHealth)
	router.POST("/api/calculate", s.handleCalculate)
	router.GET("/ws", s.handleWebSocket)
	return router
}

// Start begins serving in the background.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		s.log.Info("listening on %s", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("server error: %v", err)
		}
	}()
	return nil
}

// Stop shuts down the server and closes open WebSocket clients.
func (s *Server) Stop() error {
	s.log.Info("stopping server")
	s.hub.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown web server: %w", err)
	}
	return nil
}

// URL returns the address to open in a browser.
func (s *Server) URL() string {
	return "http://" + s.addr + "/"
}

// session resolves the calculator session for this request, creating one and
// setting the cookie on first contact.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *repl.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := s.sessions[cookie.Value]; ok {
			return sess
		}
	}

	id, err := generateSessionID()
	if err != nil {
		s.log.Error("session id generation failed: %v", err)
		id = fmt.Sprintf("fallback-%d", time.Now().UnixNano())
	}
	sess := repl.NewSession(s.calc, nil)
	s.sessions[id] = sess

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.session(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexPage.Execute(w, nil); err != nil {
		s.log.Error("render failed: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"clients": s.hub.Count(),
	})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	out := sess.Process(req.Input)
	if out.Recall != "" {
		out = sess.Process(out.Recall)
	}

	resp := CalculateResponse{
		Input:     req.Input,
		Parsed:    out.Parsed,
		SI:        out.SI,
		CGS:       out.CGS,
		Converted: out.Converted,
		Notice:    out.Notice,
	}
	if out.Err != nil {
		resp.Error = out.Err.Error()
		resp.ErrorKind = string(out.Err.Kind)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := s.session(w, r)

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// Local single-user tool; cross-origin pages are not a concern.
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed: %v", err)
		return
	}

	client := NewClient(s.hub, conn, sess, s.log)
	if !s.hub.Register(client) {
		conn.Close()
		return
	}
	go client.WritePump()
	go client.ReadPump()
}

func generateSessionID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
