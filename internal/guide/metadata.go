package guide

import "time"

// Metadata 记录一个指南的静态信息，供配置校验、缓存层与诊断端使用。
type Metadata struct {
	// Key 是指南的唯一标识，同时也是 HTTP 路由参数。
	Key string
	// Title/Description 用于诊断端展示。
	Title       string
	Description string
	// SourceFile 是文档源中的默认相对路径，可被 [[Guide]] 配置覆盖。
	SourceFile string
	// Fallback 是文档源不可用时返回的最小版指南文本，永不写入缓存。
	Fallback string
	// TTLHint 是指南的默认缓存 TTL，可被配置覆盖。
	TTLHint time.Duration
}
