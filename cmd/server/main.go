// The server hosts the interactive Mandelbrot explorer: it serves the
// static page plus the WASM client and runs one rendering session per
// websocket connection. All view transitions (zoom, back, redraw) happen
// here; the client only draws frames and forwards gestures.
package main

import (
	"flag"
	"log"
	"runtime"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	staticDir := flag.String("static", "./static", "directory with index.html, wasm_exec.js and main.wasm")
	workers := flag.Int("workers", runtime.NumCPU(), "render goroutines per session")
	flag.Parse()

	srv := webServer(*addr, *staticDir, *workers)
	log.Printf("listening on http://localhost%s", *addr)
	return srv.ListenAndServe()
}
