package contentcache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/guide-hub/guide-hub/internal/docsource"
)

// DefaultTTL 是未显式配置时的快照有效期。
const DefaultTTL = 5 * time.Minute

// Status 描述一次 Get 的结果来源，供请求日志使用。
type Status string

const (
	// StatusHit：快照在 TTL 内且版本未变化，直接返回。
	StatusHit Status = "hit"
	// StatusRefreshed：本次调用触发了一次成功的源读取。
	StatusRefreshed Status = "refreshed"
	// StatusFallback：源失败被吸收，返回的是兜底文本。
	StatusFallback Status = "fallback"
)

// Request 描述一次取文档的参数。Key 与 Fallback 来自指南配置记录，
// TTL<=0 时回退到缓存默认值。
type Request struct {
	Key      string
	Fallback string
	TTL      time.Duration
}

// Result 携带正文与结果来源。Content 在 err==nil 时总是非空可用。
type Result struct {
	Content string
	Status  Status
}

// Options 控制缓存行为，零值字段取默认。Now 可注入以便测试控制时钟。
type Options struct {
	TTL    time.Duration
	Now    func() time.Time
	Logger *logrus.Logger
}

// Cache 是进程级的单槽读穿缓存。实例在启动时构建一次并注入各处，
// 不持有外部资源，随进程存活，无需销毁。
type Cache struct {
	source docsource.Source
	ttl    time.Duration
	now    func() time.Time
	logger *logrus.Logger

	mu      sync.Mutex
	entries map[string]*entry
}

// entry 的快照只在 refresh 临界区内替换；快路径通过原子指针读取，
// 永远不会观察到半更新状态。
type entry struct {
	refresh  *semaphore.Weighted
	snapshot atomic.Pointer[snapshot]
}

type snapshot struct {
	content   string
	version   time.Time
	expiresAt time.Time
}

// New 构建缓存实例。source 不可为空。
func New(source docsource.Source, opts Options) *Cache {
	if source == nil {
		panic("contentcache: source is required")
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Cache{
		source:  source,
		ttl:     ttl,
		now:     now,
		logger:  logger,
		entries: make(map[string]*entry),
	}
}

// Get 返回键对应的最新已知正文。除取消外的任何源失败都被吸收为
// req.Fallback，调用方拿到的要么是正文要么是取消错误。
func (c *Cache) Get(ctx context.Context, req Request) (Result, error) {
	if req.Key == "" {
		return Result{}, errors.New("contentcache: key is required")
	}
	ent := c.entry(req.Key)

	// 快路径：无锁读取快照，仅做一次轻量元数据探测验证版本。
	if content, ok := c.tryCached(ctx, ent, req.Key); ok {
		return Result{Content: content, Status: StatusHit}, nil
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// 慢路径：同键 refresh 串行化，等待期间响应取消。
	if err := ent.refresh.Acquire(ctx, 1); err != nil {
		return Result{}, err
	}
	defer ent.refresh.Release(1)

	// 双重检查：等待锁期间其它调用可能已完成刷新。
	if content, ok := c.tryCached(ctx, ent, req.Key); ok {
		return Result{Content: content, Status: StatusHit}, nil
	}

	content, err := c.doRefresh(ctx, ent, req)
	if err == nil {
		return Result{Content: content, Status: StatusRefreshed}, nil
	}
	if docsource.Classify(err) == docsource.KindCanceled {
		return Result{}, err
	}

	c.logger.WithFields(logrus.Fields{
		"action": "guide_refresh",
		"key":    req.Key,
	}).Warnf("refresh failed, serving fallback: %v", err)
	return Result{Content: req.Fallback, Status: StatusFallback}, nil
}

// tryCached 在快照处于 TTL 内且源版本未变化时返回缓存正文。
// 探测失败（含不存在）一律视为需要刷新，宁可多读也不静默返回过期内容。
func (c *Cache) tryCached(ctx context.Context, ent *entry, key string) (string, bool) {
	snap := ent.snapshot.Load()
	if snap == nil {
		return "", false
	}
	if !c.now().Before(snap.expiresAt) {
		return "", false
	}
	version, err := c.source.Stat(ctx, key)
	if err != nil {
		return "", false
	}
	if !version.Equal(snap.version) {
		return "", false
	}
	return snap.content, true
}

// doRefresh 在持有 refresh 锁的前提下执行一次完整的源读取。
// 失败时不触碰既有快照，调用方据此保证旧值不会被失败污染。
func (c *Cache) doRefresh(ctx context.Context, ent *entry, req Request) (string, error) {
	if _, err := c.source.Stat(ctx, req.Key); err != nil {
		return "", err
	}

	content, version, err := c.source.Read(ctx, req.Key)
	if err != nil {
		return "", err
	}

	ttl := req.TTL
	if ttl <= 0 {
		ttl = c.ttl
	}
	c.install(ent, content, version, ttl)
	return content, nil
}

// install 只在读到的版本不早于当前快照版本时替换，防止慢速刷新
// 用更旧的结果覆盖后完成的新结果。快照替换仅发生在 refresh 临界区内。
func (c *Cache) install(ent *entry, content string, version time.Time, ttl time.Duration) {
	current := ent.snapshot.Load()
	if current != nil && version.Before(current.version) {
		return
	}
	ent.snapshot.Store(&snapshot{
		content:   content,
		version:   version,
		expiresAt: c.now().Add(ttl),
	})
}

// entry 按键惰性创建条目，进程存活期间不回收。
func (c *Cache) entry(key string) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		ent = &entry{refresh: semaphore.NewWeighted(1)}
		c.entries[key] = ent
	}
	return ent
}
