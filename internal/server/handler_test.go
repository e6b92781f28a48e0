package server

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/guide-hub/guide-hub/internal/config"
	"github.com/guide-hub/guide-hub/internal/contentcache"
	"github.com/guide-hub/guide-hub/internal/docsource"
)

func TestContentHandlerServesDocumentBody(t *testing.T) {
	app, docsDir := newContentApp(t)

	body := "# Go Best Practices\n\nfull document body"
	if err := os.WriteFile(filepath.Join(docsDir, "go-best-practices.md"), []byte(body), 0o644); err != nil {
		t.Fatalf("write doc: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/guides/go", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	got, _ := io.ReadAll(resp.Body)
	if string(got) != body {
		t.Fatalf("body mismatch: %q", string(got))
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); !strings.HasPrefix(ct, "text/markdown") {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if resp.Header.Get("X-Guide-Fallback") != "" {
		t.Fatalf("served document must not be marked as fallback")
	}
}

func TestContentHandlerServesFallbackWhenDocumentMissing(t *testing.T) {
	app, _ := newContentApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/guides/go", nil))
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("fallback must still answer 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Guide-Fallback") != "true" {
		t.Fatalf("expected fallback marker header")
	}

	got, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(got), "Go Best Practices") {
		t.Fatalf("fallback body mismatch: %q", string(got))
	}
}

func TestNewContentHandlerValidatesArguments(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	if _, err := NewContentHandler(nil, logger); err == nil {
		t.Fatalf("nil cache should fail")
	}

	source, err := docsource.NewFSSource(t.TempDir())
	if err != nil {
		t.Fatalf("source error: %v", err)
	}
	cache := contentcache.New(source, contentcache.Options{Logger: logger})
	if _, err := NewContentHandler(cache, nil); err == nil {
		t.Fatalf("nil logger should fail")
	}
}

// newContentApp wires a real cache + fs source behind the /guides route.
func newContentApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	docsDir := t.TempDir()
	source, err := docsource.NewFSSource(docsDir)
	if err != nil {
		t.Fatalf("source error: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cache := contentcache.New(source, contentcache.Options{Logger: logger})

	cfg := &config.Config{
		Global: config.GlobalConfig{
			ListenPort: 5000,
			DocsPath:   docsDir,
			CacheTTL:   config.Duration(time.Minute),
		},
		Guides: []config.GuideConfig{{Name: "go", Module: "go"}},
	}
	registry, err := NewGuideRegistry(cfg)
	if err != nil {
		t.Fatalf("registry error: %v", err)
	}

	handler, err := NewContentHandler(cache, logger)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	app, err := NewApp(AppOptions{
		Logger:     logger,
		Registry:   registry,
		Guides:     handler,
		ListenPort: 5000,
	})
	if err != nil {
		t.Fatalf("app error: %v", err)
	}
	return app, docsDir
}
