// Package golang 注册 Go 工程最佳实践指南的元数据与兜底文本。
package golang

import (
	"time"

	"github.com/guide-hub/guide-hub/internal/guide"
)

const goDefaultTTL = 5 * time.Minute

func init() {
	guide.MustRegister(guide.Metadata{
		Key:         "go",
		Title:       "Go Best Practices",
		Description: "Module layout, error handling and concurrency guidance",
		SourceFile:  "go-best-practices.md",
		Fallback:    fallbackText,
		TTLHint:     goDefaultTTL,
	})
}

const fallbackText = `# Go Best Practices

Full guide temporarily unavailable. Core recommendations:

- Handle every error; wrap with %w and context about the operation.
- Accept interfaces, return concrete types.
- Pass context.Context as the first parameter on blocking calls.
- Keep package APIs small; internal/ for private packages.
- Use go vet and golangci-lint in CI; gofmt is non-negotiable.
- Guard shared state with the smallest possible critical section.
`
