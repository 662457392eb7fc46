// Package server provides the GoLumen texture preview HTTP server.
// Textures are rendered on demand from their samplers, so the server needs
// no asset directory and never touches the filesystem.
package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/xob0t/GoLumen/pkg/assets"
	"github.com/xob0t/GoLumen/pkg/pngenc"
)

type srv struct {
	logger hclog.Logger
}

// RunServe starts the preview server on the given port.
func RunServe(args []string) error {
	port := "8080"
	for i, a := range args {
		if (a == "--port" || a == "-p") && i+1 < len(args) {
			port = args[i+1]
		}
	}

	s := &srv{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:  "golumen-serve",
			Level: hclog.Info,
		}),
	}

	addr := ":" + port
	s.logger.Info("preview server listening", "addr", "http://localhost"+addr)
	return http.ListenAndServe(addr, s.routes())
}

func (s *srv) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /textures/{name}", s.handleTexture)
	mux.HandleFunc("GET /", s.handleIndex)
	return mux
}

// handleTexture renders one named texture as PNG. Optional width/height
// query parameters override the asset's native resolution.
func (s *srv) handleTexture(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	a, ok := assets.Lookup(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	width, err := dimQuery(r, "width", a.Width)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := dimQuery(r, "height", a.Height)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := pngenc.EncodeBytes(width, height, a.Sampler)
	if err != nil {
		s.logger.Error("render failed", "name", a.Name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.logger.Info("rendered texture", "name", a.Name, "width", width, "height", height, "bytes", len(data))
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(data); err != nil {
		s.logger.Debug("write response", "name", a.Name, "error", err)
	}
}

// handleIndex lists the available textures as a minimal HTML page.
func (s *srv) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	var b strings.Builder
	b.WriteString("<!doctype html><title>GoLumen textures</title><h1>GoLumen textures</h1><ul>")
	for _, a := range assets.Defaults() {
		fmt.Fprintf(&b, `<li><a href="/textures/%s">%s</a> (%dx%d)</li>`, a.Name, a.Name, a.Width, a.Height)
	}
	b.WriteString("</ul>")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, b.String())
}

// dimQuery parses an optional positive integer query parameter.
func dimQuery(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return v, nil
}
