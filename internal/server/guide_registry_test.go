package server

import (
	"testing"
	"time"

	"github.com/guide-hub/guide-hub/internal/config"
)

func TestNewGuideRegistryBindsConfiguredGuides(t *testing.T) {
	cfg := &config.Config{
		Global: config.GlobalConfig{
			ListenPort: 5000,
			DocsPath:   t.TempDir(),
			CacheTTL:   config.Duration(time.Minute),
		},
		Guides: []config.GuideConfig{
			{Name: "go", Module: "go"},
			{Name: "container-builds", Module: "docker", Source: "container/docker.md", CacheTTL: config.Duration(30 * time.Second)},
		},
	}

	registry, err := NewGuideRegistry(cfg)
	if err != nil {
		t.Fatalf("failed to create registry: %v", err)
	}

	route, ok := registry.Lookup("go")
	if !ok {
		t.Fatalf("registry lookup failed for go")
	}
	if route.SourceKey != "go-best-practices.md" {
		t.Fatalf("expected module default source, got %s", route.SourceKey)
	}
	if route.CacheTTL != time.Minute {
		t.Fatalf("expected global TTL, got %v", route.CacheTTL)
	}

	route, ok = registry.Lookup("Container-Builds")
	if !ok {
		t.Fatalf("lookup should be case-insensitive")
	}
	if route.SourceKey != "container/docker.md" {
		t.Fatalf("expected source override, got %s", route.SourceKey)
	}
	if route.CacheTTL != 30*time.Second {
		t.Fatalf("expected guide TTL override, got %v", route.CacheTTL)
	}
	if route.Module.Fallback == "" {
		t.Fatalf("route should carry the module fallback text")
	}
}

func TestNewGuideRegistryDefaultsToAllModules(t *testing.T) {
	cfg := &config.Config{
		Global: config.GlobalConfig{
			ListenPort: 5000,
			DocsPath:   t.TempDir(),
			CacheTTL:   config.Duration(time.Minute),
		},
	}

	registry, err := NewGuideRegistry(cfg)
	if err != nil {
		t.Fatalf("failed to create registry: %v", err)
	}

	routes := registry.List()
	if len(routes) == 0 {
		t.Fatalf("empty [[Guide]] config should bind every registered module")
	}
	if _, ok := registry.Lookup("docker"); !ok {
		t.Fatalf("docker module should be bound by default")
	}
	if _, ok := registry.Lookup("go"); !ok {
		t.Fatalf("go module should be bound by default")
	}
}

func TestNewGuideRegistryRejectsDuplicatesAndUnknowns(t *testing.T) {
	base := config.GlobalConfig{ListenPort: 5000, DocsPath: "./docs", CacheTTL: config.Duration(time.Minute)}

	dup := &config.Config{
		Global: base,
		Guides: []config.GuideConfig{
			{Name: "go", Module: "go"},
			{Name: "GO", Module: "go"},
		},
	}
	if _, err := NewGuideRegistry(dup); err == nil {
		t.Fatalf("duplicate guide names should fail")
	}

	unknown := &config.Config{
		Global: base,
		Guides: []config.GuideConfig{{Name: "rust", Module: "rust"}},
	}
	if _, err := NewGuideRegistry(unknown); err == nil {
		t.Fatalf("unknown module should fail")
	}

	if _, err := NewGuideRegistry(nil); err == nil {
		t.Fatalf("nil config should fail")
	}
}
