package portfolio

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/upload" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("expected bearer header, got %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("expected multipart file field: %v", err)
		}
		defer file.Close()
		if header.Filename != "cv.pdf" {
			t.Errorf("unexpected filename %q", header.Filename)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "%PDF-fake" {
			t.Errorf("file content mangled: %q", content)
		}
		json.NewEncoder(w).Encode(map[string]string{"url": "/uploads/cv.pdf"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	url, err := client.Upload(context.Background(), "tok", "cv.pdf", strings.NewReader("%PDF-fake"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Relative backend paths get joined with the backend base URL.
	if url != server.URL+"/uploads/cv.pdf" {
		t.Errorf("expected absolute URL, got %q", url)
	}
}

func TestUploadAbsoluteURLPassedThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/cv.pdf"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	url, err := client.Upload(context.Background(), "tok", "cv.pdf", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://cdn.example.com/cv.pdf" {
		t.Errorf("absolute URL should pass through, got %q", url)
	}
}
