// Package web serves the simulation dashboard: a small embedded UI, a
// JSON results endpoint, and a websocket stream of summary records as
// the runner finishes each configuration point.
package web

import (
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	"log"
	"net/http"

	"github.com/coder/websocket"
)

//go:embed static
var staticFiles embed.FS

// Server is the redsim dashboard server.
type Server struct {
	hub *Hub
	mux *http.ServeMux
}

// NewServer creates a web server publishing records from the given hub.
func NewServer(hub *Hub) *Server {
	s := &Server{
		hub: hub,
		mux: http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.mux.HandleFunc("GET /api/results", s.handleResults)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		Running bool        `json:"running"`
		Records interface{} `json:"records"`
	}{
		Running: s.hub.Running(),
		Records: s.hub.Records(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	// Replay everything published so far, then stream new records.
	for _, rec := range s.hub.Records() {
		data, err := json.Marshal(rec)
		if err != nil {
			continue
		}
		if err := wsConn.Write(ctx, websocket.MessageText, data); err != nil {
			return
		}
	}

	ch, cancel := s.hub.Subscribe()
	defer cancel()

	for {
		select {
		case rec := <-ch:
			data, err := json.Marshal(rec)
			if err != nil {
				continue
			}
			if err := wsConn.Write(ctx, websocket.MessageText, data); err != nil {
				return
			}
		case <-ctx.Done():
			wsConn.Close(websocket.StatusNormalClosure, "client gone")
			return
		}
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
