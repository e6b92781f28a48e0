package config

import (
	"strings"
	"testing"
)

func TestLoadFailsWhenFileMissing(t *testing.T) {
	if _, err := Load("/nonexistent/config.toml"); err == nil {
		t.Fatalf("不存在的配置文件应返回错误")
	}
}

func TestLoadRejectsInvalidDuration(t *testing.T) {
	cfg := `
LogLevel = "info"
DocsPath = "./docs"
CacheTTL = "boom"

[[Guide]]
Name = "go"
`
	if _, err := Load(writeTempConfig(t, cfg)); err == nil {
		t.Fatalf("无效 Duration 应失败")
	}
}

func TestLoadRejectsUnknownModule(t *testing.T) {
	cfg := `
DocsPath = "./docs"

[[Guide]]
Name = "rustacean"
`
	_, err := Load(writeTempConfig(t, cfg))
	if err == nil {
		t.Fatalf("未注册模块应失败")
	}
	if !strings.Contains(err.Error(), "Guide[rustacean].Module") {
		t.Fatalf("错误应包含字段路径，得到 %v", err)
	}
}

func TestLoadRejectsDuplicateGuideNames(t *testing.T) {
	cfg := `
DocsPath = "./docs"

[[Guide]]
Name = "go"

[[Guide]]
Name = "go"
`
	if _, err := Load(writeTempConfig(t, cfg)); err == nil {
		t.Fatalf("重复指南名应失败")
	}
}

func TestLoadRejectsEscapingSource(t *testing.T) {
	for _, source := range []string{"/etc/passwd", "../outside.md", `a\b.md`} {
		cfg := `
DocsPath = "./docs"

[[Guide]]
Name = "go"
Source = "` + strings.ReplaceAll(source, `\`, `\\`) + `"
`
		if _, err := Load(writeTempConfig(t, cfg)); err == nil {
			t.Fatalf("越界 Source %q 应失败", source)
		}
	}
}

func TestLoadAllowsEmptyGuideList(t *testing.T) {
	cfg := `
DocsPath = "./docs"
`
	parsed, err := Load(writeTempConfig(t, cfg))
	if err != nil {
		t.Fatalf("空 Guide 列表应合法: %v", err)
	}
	if len(parsed.Guides) != 0 {
		t.Fatalf("Guide 列表应为空，得到 %d", len(parsed.Guides))
	}
}
