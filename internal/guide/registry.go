package guide

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var globalRegistry = newRegistry()

type registry struct {
	mu     sync.RWMutex
	guides map[string]Metadata
}

func newRegistry() *registry {
	return &registry{guides: make(map[string]Metadata)}
}

// Register 将指南元数据加入全局注册表，重复键会返回错误。
func Register(meta Metadata) error {
	return globalRegistry.register(meta)
}

// MustRegister 在注册失败时 panic，适合指南包 init() 中调用。
func MustRegister(meta Metadata) {
	if err := Register(meta); err != nil {
		panic(err)
	}
}

// Resolve 返回指定键的指南元数据。
func Resolve(key string) (Metadata, bool) {
	return globalRegistry.resolve(key)
}

// List 返回按键排序的指南元数据列表。
func List() []Metadata {
	return globalRegistry.list()
}

// Keys 返回所有已注册指南的键值，供调试或诊断使用。
func Keys() []string {
	items := List()
	result := make([]string, len(items))
	for i, meta := range items {
		result[i] = meta.Key
	}
	return result
}

func (r *registry) normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func (r *registry) register(meta Metadata) error {
	if meta.Key == "" {
		return fmt.Errorf("guide key is required")
	}
	key := r.normalizeKey(meta.Key)
	if key == "" {
		return fmt.Errorf("guide key is required")
	}
	if meta.Fallback == "" {
		return fmt.Errorf("guide %s: fallback text is required", key)
	}
	if meta.SourceFile == "" {
		return fmt.Errorf("guide %s: source file is required", key)
	}
	meta.Key = key

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.guides[key]; exists {
		return fmt.Errorf("guide %s already registered", key)
	}
	r.guides[key] = meta
	return nil
}

func (r *registry) resolve(key string) (Metadata, bool) {
	if key == "" {
		return Metadata{}, false
	}
	normalized := r.normalizeKey(key)

	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, ok := r.guides[normalized]
	return meta, ok
}

func (r *registry) list() []Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.guides) == 0 {
		return nil
	}

	keys := make([]string, 0, len(r.guides))
	for key := range r.guides {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]Metadata, 0, len(keys))
	for _, key := range keys {
		result = append(result, r.guides[key])
	}
	return result
}
