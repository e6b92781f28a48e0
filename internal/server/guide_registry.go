package server

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guide-hub/guide-hub/internal/config"
	"github.com/guide-hub/guide-hub/internal/guide"
)

// GuideRoute 将指南配置与派生属性（生效 TTL、文档源键、模块元数据）
// 聚合在一起，供路由/缓存层直接复用，避免重复解析配置。
type GuideRoute struct {
	// Config 是用户在 config.toml 中声明的 Guide 字段副本，避免外部修改。
	Config config.GuideConfig
	// ModuleKey/Module 记录当前指南绑定的模块及其元数据，便于日志与诊断。
	ModuleKey string
	Module    guide.Metadata
	// SourceKey 是文档源中的生效相对路径。
	SourceKey string
	// CacheTTL 是对当前指南生效的 TTL，未覆盖时等于全局值或模块默认值。
	CacheTTL time.Duration
}

// GuideRegistry 提供指南名到 GuideRoute 的查询能力。
type GuideRegistry struct {
	routes  map[string]*GuideRoute
	ordered []*GuideRoute
}

// NewGuideRegistry 根据配置构建指南映射。调用方应在启动阶段创建一次并复用。
// 未声明任何 [[Guide]] 时，注册表内的全部指南模块按默认值生效。
func NewGuideRegistry(cfg *config.Config) (*GuideRegistry, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	registry := &GuideRegistry{
		routes: make(map[string]*GuideRoute),
	}

	if len(cfg.Guides) == 0 {
		for _, meta := range guide.List() {
			registry.add(&GuideRoute{
				Config:    config.GuideConfig{Name: meta.Key, Module: meta.Key},
				ModuleKey: meta.Key,
				Module:    meta,
				SourceKey: meta.SourceFile,
				CacheTTL:  cfg.EffectiveCacheTTL(config.GuideConfig{}, meta),
			})
		}
		return registry, nil
	}

	for _, entry := range cfg.Guides {
		name := normalizeGuideName(entry.Name)
		if name == "" {
			return nil, fmt.Errorf("invalid name for guide %q", entry.Name)
		}
		if _, exists := registry.routes[name]; exists {
			return nil, fmt.Errorf("duplicate guide mapping detected for %s", name)
		}

		meta, ok := guide.Resolve(entry.Module)
		if !ok {
			return nil, fmt.Errorf("guide %s: unknown module %s", entry.Name, entry.Module)
		}

		registry.add(&GuideRoute{
			Config:    entry,
			ModuleKey: meta.Key,
			Module:    meta,
			SourceKey: config.EffectiveSource(entry, meta),
			CacheTTL:  cfg.EffectiveCacheTTL(entry, meta),
		})
	}

	return registry, nil
}

// Lookup 根据指南名查找 GuideRoute，名称大小写不敏感。
func (r *GuideRegistry) Lookup(name string) (*GuideRoute, bool) {
	if r == nil {
		return nil, false
	}

	normalized := normalizeGuideName(name)
	if normalized == "" {
		return nil, false
	}

	route, ok := r.routes[normalized]
	return route, ok
}

// List 返回当前注册的 GuideRoute 列表（按配置定义的顺序），用于诊断输出。
func (r *GuideRegistry) List() []GuideRoute {
	if r == nil || len(r.ordered) == 0 {
		return nil
	}

	result := make([]GuideRoute, len(r.ordered))
	for i, route := range r.ordered {
		result[i] = *route
	}
	return result
}

func (r *GuideRegistry) add(route *GuideRoute) {
	r.routes[normalizeGuideName(route.Config.Name)] = route
	r.ordered = append(r.ordered, route)
}

func normalizeGuideName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
