// Package apk 注册 Alpine APK 最佳实践指南的元数据与兜底文本。
package apk

import (
	"time"

	"github.com/guide-hub/guide-hub/internal/guide"
)

const apkDefaultTTL = 5 * time.Minute

func init() {
	guide.MustRegister(guide.Metadata{
		Key:         "apk",
		Title:       "Alpine APK Best Practices",
		Description: "Package management guidance for Alpine-based systems",
		SourceFile:  "apk-best-practices.md",
		Fallback:    fallbackText,
		TTLHint:     apkDefaultTTL,
	})
}

const fallbackText = `# Alpine APK Best Practices

Full guide temporarily unavailable. Core recommendations:

- Use apk add --no-cache to avoid stale index layers.
- Pin package versions where reproducibility matters.
- Group build-time deps with --virtual and remove them after use.
- Stick to a single Alpine minor release per image.
- Verify repositories are served over HTTPS with valid keys.
- Remember musl differences when porting glibc software.
`
