package guide

import "testing"

func replaceRegistry(t *testing.T) func() {
	t.Helper()
	prev := globalRegistry
	globalRegistry = newRegistry()
	return func() { globalRegistry = prev }
}

func testMetadata(key string) Metadata {
	return Metadata{
		Key:        key,
		Title:      key + " guide",
		SourceFile: key + ".md",
		Fallback:   "# " + key + "\n\nminimal guidance",
	}
}

func TestRegisterResolveAndList(t *testing.T) {
	cleanup := replaceRegistry(t)
	defer cleanup()

	if err := Register(testMetadata("beta")); err != nil {
		t.Fatalf("register beta failed: %v", err)
	}
	if err := Register(testMetadata("gamma")); err != nil {
		t.Fatalf("register gamma failed: %v", err)
	}

	if _, ok := Resolve("beta"); !ok {
		t.Fatalf("expected beta to resolve")
	}
	if _, ok := Resolve("BETA"); !ok {
		t.Fatalf("resolve should be case-insensitive")
	}

	list := List()
	if len(list) != 2 {
		t.Fatalf("list length mismatch: %d", len(list))
	}
	if list[0].Key != "beta" || list[1].Key != "gamma" {
		t.Fatalf("unexpected order: %+v", list)
	}
}

func TestRegisterDuplicateFails(t *testing.T) {
	cleanup := replaceRegistry(t)
	defer cleanup()

	if err := Register(testMetadata("docker")); err != nil {
		t.Fatalf("first registration should succeed: %v", err)
	}
	if err := Register(testMetadata("docker")); err == nil {
		t.Fatalf("duplicate registration should fail")
	}
}

func TestRegisterRejectsIncompleteMetadata(t *testing.T) {
	cleanup := replaceRegistry(t)
	defer cleanup()

	if err := Register(Metadata{Key: ""}); err == nil {
		t.Fatalf("empty key should fail")
	}

	missingFallback := testMetadata("go")
	missingFallback.Fallback = ""
	if err := Register(missingFallback); err == nil {
		t.Fatalf("missing fallback should fail")
	}

	missingSource := testMetadata("go")
	missingSource.SourceFile = ""
	if err := Register(missingSource); err == nil {
		t.Fatalf("missing source file should fail")
	}
}
