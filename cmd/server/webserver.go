package main

import (
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

// webServer builds the http server: static files (index.html, main.wasm)
// at the root and the interactive session endpoint at /ws.
func webServer(addr, staticDir string, workers int) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(workers))
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// websocketHandler upgrades the connection and runs a session on it until
// the client disconnects. Each connection gets its own view state and
// navigation history.
func websocketHandler(workers int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}

		log.Printf("session started: %s", r.RemoteAddr)
		s := newSession(c, workers)
		if err := s.run(r.Context()); err != nil {
			log.Printf("session %s ended: %v", r.RemoteAddr, err)
		}
	}
}
