// Package api exposes a board session over HTTP and websocket so renderers
// in other processes can read snapshots and submit intents.
package api

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/gridsnake/engine/config"
	"github.com/gridsnake/engine/game"
	"github.com/gridsnake/engine/session"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// TurnRequest is the body of POST /board/turn.
type TurnRequest struct {
	Direction string `json:"direction"`
}

// IntentResponse reports whether an intent changed any state.
type IntentResponse struct {
	Changed bool `json:"changed"`
}

// ErrorResponse carries a failure back to the client.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serves the engine API for a single session.
type Server struct {
	hs       *http.Server
	session  *session.Session
	limiter  *rate.Limiter
	upgrader websocket.Upgrader

	started chan struct{}
	port    int
}

// New wires the API routes for the given session. The server listens once
// WaitForExit is called.
func New(listen string, s *session.Session) *Server {
	srv := &Server{
		session: s,
		limiter: rate.NewLimiter(config.IntentRate, config.IntentBurst),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		started: make(chan struct{}),
	}

	router := httprouter.New()
	router.GET("/board", srv.board)
	router.POST("/board/turn", srv.turn)
	router.POST("/board/pause", srv.pause)
	router.POST("/board/restart", srv.restart)
	router.GET("/board/socket", srv.socket)

	srv.hs = &http.Server{
		Addr:    listen,
		Handler: cors.AllowAll().Handler(router),
	}
	return srv
}

// WaitForExit binds the listen address and serves until the server stops.
func (s *Server) WaitForExit() error {
	lis, err := net.Listen("tcp", s.hs.Addr)
	if err != nil {
		return errors.Wrap(err, "api: listen")
	}
	s.port = lis.Addr().(*net.TCPAddr).Port
	close(s.started)
	log.WithField("listen", lis.Addr().String()).Info("gridsnake api listening")
	return s.hs.Serve(lis)
}

// DialAddress returns a localhost address to reach the server, blocking
// until the listener is bound. This is useful if the server selected its
// own port.
func (s *Server) DialAddress() string {
	<-s.started
	return fmt.Sprintf("127.0.0.1:%d", s.port)
}

// Close immediately closes the server and its listener.
func (s *Server) Close() error {
	return s.hs.Close()
}

func (s *Server) board(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	snap, err := s.session.Snapshot()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) turn(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := TurnRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "decoding turn request"))
		return
	}
	d, err := game.ParseDirection(req.Direction)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.intent(w, func() (bool, error) { return s.session.Turn(d) })
}

func (s *Server) pause(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.intent(w, s.session.TogglePause)
}

func (s *Server) restart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.intent(w, s.session.Restart)
}

// intent applies the shared policy for player intents: rate limiting, the
// closed-session check, and the changed-state reply.
func (s *Server) intent(w http.ResponseWriter, do func() (bool, error)) {
	if !s.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, errors.New("intent rate exceeded"))
		return
	}
	changed, err := do()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, IntentResponse{Changed: changed})
}

// socket streams one snapshot frame per engine change until the client or
// the session goes away.
func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	snaps, cancel, err := s.session.Watch(config.WatchBuffer)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	defer cancel()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.WithError(err).Debug("websocket close")
		}
	}()

	// Reads only serve to notice the peer hanging up.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snap, ok := <-snaps:
			if !ok {
				msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed")
				if err := conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
					log.WithError(err).Debug("websocket close message")
				}
				return
			}
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
		case <-gone:
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("encoding api response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
