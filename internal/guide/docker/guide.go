// Package docker 注册 Docker 镜像构建最佳实践指南的元数据与兜底文本。
package docker

import (
	"time"

	"github.com/guide-hub/guide-hub/internal/guide"
)

const dockerDefaultTTL = 5 * time.Minute

func init() {
	guide.MustRegister(guide.Metadata{
		Key:         "docker",
		Title:       "Docker Best Practices",
		Description: "Image build and container runtime guidance",
		SourceFile:  "docker-best-practices.md",
		Fallback:    fallbackText,
		TTLHint:     dockerDefaultTTL,
	})
}

// fallbackText 是文档源不可用时的最小版指南，保持自包含。
const fallbackText = `# Docker Best Practices

Full guide temporarily unavailable. Core recommendations:

- Pin base images to a digest, not a floating tag.
- Use multi-stage builds to keep runtime images small.
- Run as a non-root user and drop unneeded capabilities.
- Declare a HEALTHCHECK and handle SIGTERM for clean shutdown.
- Keep one process per container; log to stdout/stderr.
- Use .dockerignore to keep build context minimal.
`
