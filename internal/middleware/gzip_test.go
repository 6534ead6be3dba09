package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Тест: клиент без Accept-Encoding: gzip получает несжатый ответ.
func TestWithGzip_PlainClient(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"title":"first"}]`))
	})
	h := WithGzip(next)

	req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status want 200, got %d", rr.Code)
	}
	if ce := rr.Header().Get("Content-Encoding"); ce != "" {
		t.Fatalf("unexpected Content-Encoding: %q", ce)
	}
	if rr.Body.String() != `[{"title":"first"}]` {
		t.Fatalf("unexpected body: %q", rr.Body.String())
	}
}

// Тест: клиент с Accept-Encoding: gzip получает сжатый ответ,
// а выставленный хендлером Content-Length убирается.
func TestWithGzip_GzipClient(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "19")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"title":"first"}]`))
	})
	h := WithGzip(next)

	req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip Content-Encoding, got %q", rr.Header().Get("Content-Encoding"))
	}
	if cl := rr.Header().Get("Content-Length"); cl != "" {
		t.Fatalf("Content-Length should be dropped, got %q", cl)
	}

	gr, err := gzip.NewReader(bytes.NewReader(rr.Body.Bytes()))
	if err != nil {
		t.Fatalf("failed to create gzip reader: %v", err)
	}
	defer gr.Close()
	data, err := io.ReadAll(gr)
	if err != nil {
		t.Fatalf("failed to read gzipped body: %v", err)
	}
	if string(data) != `[{"title":"first"}]` {
		t.Fatalf("unexpected ungzipped body: %q", string(data))
	}
}

// Тест: сжатое тело запроса прозрачно распаковывается для хендлера.
func TestWithGzip_CompressedRequestBody(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("failed to read request body: %v", err)
		}
		seen = string(b)
	})
	h := WithGzip(next)

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, _ = gw.Write([]byte(`{"title":"compressed"}`))
	_ = gw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/blogs", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if seen != `{"title":"compressed"}` {
		t.Fatalf("handler saw %q", seen)
	}
}

// Тест: битый gzip в теле запроса — 400 до вызова хендлера.
func TestWithGzip_BrokenRequestBody(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	h := WithGzip(next)

	req := httptest.NewRequest(http.MethodPost, "/api/blogs", strings.NewReader("not gzip at all"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if called {
		t.Fatal("handler should not run on broken gzip body")
	}
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status want 400, got %d", rr.Code)
	}
}
