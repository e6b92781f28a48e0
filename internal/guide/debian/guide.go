// Package debian 注册 Debian/APT 仓库维护最佳实践指南的元数据与兜底文本。
package debian

import (
	"time"

	"github.com/guide-hub/guide-hub/internal/guide"
)

const debianDefaultTTL = 5 * time.Minute

func init() {
	guide.MustRegister(guide.Metadata{
		Key:         "debian",
		Title:       "Debian Packaging Best Practices",
		Description: "APT repository and .deb packaging guidance",
		SourceFile:  "debian-best-practices.md",
		Fallback:    fallbackText,
		TTLHint:     debianDefaultTTL,
	})
}

const fallbackText = `# Debian Packaging Best Practices

Full guide temporarily unavailable. Core recommendations:

- Sign repositories and verify with signed-by keyrings, not apt-key.
- Pin package versions for reproducible images and hosts.
- Run apt-get update and install in one layer; clean lists afterwards.
- Use --no-install-recommends to keep installs minimal.
- Prefer stable + security pockets; avoid mixing releases.
- Build packages with debhelper and lint with lintian.
`
