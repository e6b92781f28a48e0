package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("写入临时配置失败: %v", err)
	}
	return path
}

const validConfig = `
LogLevel = "info"
DocsPath = "./docs"
CacheTTL = "5m"

[[Guide]]
Name = "go"

[[Guide]]
Name = "container-builds"
Module = "docker"
Source = "container/docker.md"
CacheTTL = "30s"
`
