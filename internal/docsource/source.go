package docsource

import (
	"context"
	"errors"
	"time"
)

// Source 负责提供文档正文与版本信息。版本号使用文件 ModTime，
// 上层只通过 Equal/Before 比较，不关心其具体含义。
type Source interface {
	// Stat 返回文档当前的版本号，作为轻量的存在性/元数据探测。
	// 文档不存在时返回 ErrNotFound。
	Stat(ctx context.Context, key string) (time.Time, error)

	// Read 返回完整正文以及与正文一致的版本号。
	// 文档不存在时返回 ErrNotFound。
	Read(ctx context.Context, key string) (string, time.Time, error)
}

// ErrNotFound 表示文档源中不存在该键。
var ErrNotFound = errors.New("document not found")

// Kind 是源错误的统一分类，缓存层据此决定兜底或向上传播。
type Kind int

const (
	// KindNotFound：键不存在，走兜底文本，不缓存。
	KindNotFound Kind = iota
	// KindTransient：I/O、权限或不支持的操作等可恢复失败，走兜底文本，不缓存。
	KindTransient
	// KindCanceled：调用方取消，原样向上传播，不产生正文。
	KindCanceled
)

// Classify 将任意源错误映射到 Kind。未识别的错误一律按 Transient 处理，
// 保证缓存层只需要一次 switch 而不必匹配具体错误类型。
func Classify(err error) Kind {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindTransient
	}
}
