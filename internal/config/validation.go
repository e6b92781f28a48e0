package config

import (
	"errors"
	"path"
	"strings"

	"github.com/guide-hub/guide-hub/internal/guide"
)

// Validate 针对语义级别做进一步校验，防止非法配置启动服务。
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("配置为空")
	}

	g := c.Global
	if g.ListenPort <= 0 || g.ListenPort > 65535 {
		return newFieldError("Global.ListenPort", "必须在 1-65535")
	}
	if g.DocsPath == "" {
		return newFieldError("Global.DocsPath", "不能为空")
	}
	if g.CacheTTL.DurationValue() <= 0 {
		return newFieldError("Global.CacheTTL", "必须大于 0")
	}

	// [[Guide]] 可以为空：此时注册表内的全部指南按默认值生效。
	seenNames := map[string]struct{}{}
	for i := range c.Guides {
		entry := &c.Guides[i]
		if entry.Name == "" {
			return newFieldError("Guide[].Name", "不能为空")
		}
		if _, exists := seenNames[entry.Name]; exists {
			return newFieldError(guideField(entry.Name, "Name"), "重复")
		}
		seenNames[entry.Name] = struct{}{}

		if _, ok := guide.Resolve(entry.Module); !ok {
			return newFieldError(guideField(entry.Name, "Module"), "未注册指南模块: "+entry.Module)
		}

		if err := validateSource(entry.Source); err != nil {
			return newFieldError(guideField(entry.Name, "Source"), err.Error())
		}
	}

	return nil
}

// validateSource 拒绝绝对路径与越界片段，保证键始终是 docs 相对路径。
func validateSource(source string) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil
	}
	if strings.HasPrefix(source, "/") || strings.Contains(source, "\\") {
		return errors.New("必须是 docs 相对路径")
	}
	if cleaned := path.Clean(source); cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return errors.New("不允许越出文档目录")
	}
	return nil
}
