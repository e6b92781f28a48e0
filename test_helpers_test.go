package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// writeConfigFile 在临时目录写入配置文件并返回路径。
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}
	return path
}

// validConfigFile 生成一份指向临时 docs 目录的最小合法配置。
func validConfigFile(t *testing.T) string {
	t.Helper()
	docs := t.TempDir()
	return writeConfigFile(t, fmt.Sprintf(`
LogLevel = "info"
DocsPath = "%s"
CacheTTL = "5m"

[[Guide]]
Name = "go"

[[Guide]]
Name = "docker"
`, docs))
}
