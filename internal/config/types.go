package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/guide-hub/guide-hub/internal/guide"
)

// Duration 提供更灵活的反序列化能力，同时兼容纯秒整数与 Go Duration 字符串。
type Duration time.Duration

// UnmarshalText 使 Viper 可以识别诸如 "30s"、"5m" 或纯数字秒值等配置写法。
func (d *Duration) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if raw == "" {
		*d = Duration(0)
		return nil
	}

	if parsed, err := time.ParseDuration(raw); err == nil {
		*d = Duration(parsed)
		return nil
	}

	if intVal, err := parseInt(raw); err == nil {
		*d = Duration(time.Duration(intVal) * time.Second)
		return nil
	}

	return fmt.Errorf("invalid duration value: %s", raw)
}

// DurationValue 返回真实的 time.Duration，便于调用方计算。
func (d Duration) DurationValue() time.Duration {
	return time.Duration(d)
}

// parseInt 支持十进制或 0x 前缀的十六进制字符串解析。
func parseInt(value string) (int64, error) {
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		return strconv.ParseInt(value, 0, 64)
	}
	return strconv.ParseInt(value, 10, 64)
}

// GlobalConfig 描述全局运行时行为，所有指南共享同一份参数。
type GlobalConfig struct {
	ListenPort    int      `mapstructure:"ListenPort"`
	LogLevel      string   `mapstructure:"LogLevel"`
	LogFilePath   string   `mapstructure:"LogFilePath"`
	LogMaxSize    int      `mapstructure:"LogMaxSize"`
	LogMaxBackups int      `mapstructure:"LogMaxBackups"`
	LogCompress   bool     `mapstructure:"LogCompress"`
	DocsPath      string   `mapstructure:"DocsPath"`
	CacheTTL      Duration `mapstructure:"CacheTTL"`
}

// GuideConfig 决定单个指南如何绑定到文档源与缓存策略。
type GuideConfig struct {
	Name     string   `mapstructure:"Name"`
	Module   string   `mapstructure:"Module"`
	Source   string   `mapstructure:"Source"`
	CacheTTL Duration `mapstructure:"CacheTTL"`
}

// Config 是 TOML 文件映射的整体结构。
type Config struct {
	Global GlobalConfig  `mapstructure:",squash"`
	Guides []GuideConfig `mapstructure:"Guide"`
}

// EffectiveCacheTTL 返回特定指南生效的 TTL：指南配置 > 全局配置 > 模块默认值。
func (c *Config) EffectiveCacheTTL(g GuideConfig, meta guide.Metadata) time.Duration {
	if g.CacheTTL.DurationValue() > 0 {
		return g.CacheTTL.DurationValue()
	}
	if c.Global.CacheTTL.DurationValue() > 0 {
		return c.Global.CacheTTL.DurationValue()
	}
	return meta.TTLHint
}

// EffectiveSource 返回指南实际读取的文档源相对路径，未覆盖时使用模块默认文件。
func EffectiveSource(g GuideConfig, meta guide.Metadata) string {
	if source := strings.TrimSpace(g.Source); source != "" {
		return source
	}
	return meta.SourceFile
}
