// Package npm 注册 npm 依赖管理最佳实践指南的元数据与兜底文本。
package npm

import (
	"time"

	"github.com/guide-hub/guide-hub/internal/guide"
)

const npmDefaultTTL = 5 * time.Minute

func init() {
	guide.MustRegister(guide.Metadata{
		Key:         "npm",
		Title:       "npm Best Practices",
		Description: "Dependency hygiene and publishing guidance for npm projects",
		SourceFile:  "npm-best-practices.md",
		Fallback:    fallbackText,
		TTLHint:     npmDefaultTTL,
	})
}

const fallbackText = `# npm Best Practices

Full guide temporarily unavailable. Core recommendations:

- Commit package-lock.json and install with npm ci in CI.
- Pin engines in package.json and use .nvmrc for local parity.
- Audit dependencies regularly; prefer well-maintained packages.
- Never publish secrets: use .npmignore or the files whitelist.
- Use scoped packages and 2FA for publishing.
- Avoid postinstall scripts unless absolutely required.
`
