package server

import (
	"bytes"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func testServer() http.Handler {
	s := &srv{logger: hclog.NewNullLogger()}
	return s.routes()
}

func TestHandleTexture(t *testing.T) {
	handler := testServer()

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantW      int
		wantH      int
	}{
		{name: "known texture with overrides", url: "/textures/sample_gobo.png?width=32&height=24", wantStatus: http.StatusOK, wantW: 32, wantH: 24},
		{name: "bare stem", url: "/textures/sample_gobo?width=16&height=16", wantStatus: http.StatusOK, wantW: 16, wantH: 16},
		{name: "unknown texture", url: "/textures/nope.png", wantStatus: http.StatusNotFound},
		{name: "bad width", url: "/textures/sample_gobo.png?width=potato", wantStatus: http.StatusBadRequest},
		{name: "non-positive width", url: "/textures/sample_gobo.png?width=0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("GET %s = %d, want %d", tt.url, rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
				t.Errorf("Content-Type = %q, want image/png", ct)
			}
			img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
			if err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if img.Bounds().Dx() != tt.wantW || img.Bounds().Dy() != tt.wantH {
				t.Errorf("decoded %v, want %dx%d", img.Bounds(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestHandleIndex(t *testing.T) {
	handler := testServer()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", rec.Code)
	}

	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{"sample_base_texture.png", "sample_normal_map.png", "sample_gobo.png"} {
		if !strings.Contains(string(body), name) {
			t.Errorf("index missing link to %s", name)
		}
	}
}
