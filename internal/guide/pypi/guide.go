// Package pypi 注册 Python 打包最佳实践指南的元数据与兜底文本。
package pypi

import (
	"time"

	"github.com/guide-hub/guide-hub/internal/guide"
)

const pypiDefaultTTL = 5 * time.Minute

func init() {
	guide.MustRegister(guide.Metadata{
		Key:         "pypi",
		Title:       "Python Packaging Best Practices",
		Description: "Packaging, virtualenv and dependency guidance for Python projects",
		SourceFile:  "pypi-best-practices.md",
		Fallback:    fallbackText,
		TTLHint:     pypiDefaultTTL,
	})
}

const fallbackText = `# Python Packaging Best Practices

Full guide temporarily unavailable. Core recommendations:

- Declare metadata in pyproject.toml; avoid legacy setup.py logic.
- Pin runtime dependencies with a lock file (pip-tools, uv, poetry).
- Always work inside a virtual environment.
- Upload with twine over API tokens, never passwords.
- Ship wheels alongside sdists; test installs in a clean env.
- Follow semantic versioning and keep a changelog.
`
