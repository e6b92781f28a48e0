// Package composer 注册 PHP Composer 最佳实践指南的元数据与兜底文本。
package composer

import (
	"time"

	"github.com/guide-hub/guide-hub/internal/guide"
)

const composerDefaultTTL = 5 * time.Minute

func init() {
	guide.MustRegister(guide.Metadata{
		Key:         "composer",
		Title:       "Composer Best Practices",
		Description: "Dependency and autoloading guidance for PHP projects",
		SourceFile:  "composer-best-practices.md",
		Fallback:    fallbackText,
		TTLHint:     composerDefaultTTL,
	})
}

const fallbackText = `# Composer Best Practices

Full guide temporarily unavailable. Core recommendations:

- Commit composer.lock and install with --no-dev in production.
- Constrain versions with caret ranges, not wildcards.
- Use composer validate and audit in CI.
- Optimize the autoloader for production (--optimize-autoloader).
- Keep platform requirements (php, ext-*) explicit in require.
- Never run composer as root on shared hosts.
`
