package server

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/guide-hub/guide-hub/internal/contentcache"
	"github.com/guide-hub/guide-hub/internal/logging"
)

// ContentHandler 将指南路由翻译为一次内容缓存读取，并渲染正文。
type ContentHandler struct {
	cache  *contentcache.Cache
	logger *logrus.Logger
}

// NewContentHandler 构建缓存驱动的指南处理器。
func NewContentHandler(cache *contentcache.Cache, logger *logrus.Logger) (*ContentHandler, error) {
	if cache == nil {
		return nil, errors.New("cache is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	return &ContentHandler{cache: cache, logger: logger}, nil
}

// Handle 用请求上下文取文档：除取消外永远返回正文（必要时是兜底文本）。
func (h *ContentHandler) Handle(c fiber.Ctx, route *GuideRoute) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := h.cache.Get(ctx, contentcache.Request{
		Key:      route.SourceKey,
		Fallback: route.Module.Fallback,
		TTL:      route.CacheTTL,
	})
	if err != nil {
		// 只剩取消类错误：调用方已离开，不再渲染正文。
		return err
	}

	fields := logging.RequestFields(route.Config.Name, route.ModuleKey, string(result.Status))
	fields["request_id"] = RequestID(c)
	h.logger.WithFields(fields).Info("guide served")

	if result.Status == contentcache.StatusFallback {
		c.Set("X-Guide-Fallback", "true")
	}
	c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	return c.SendString(result.Content)
}

// Ensure ContentHandler implements GuideHandler
var _ GuideHandler = (*ContentHandler)(nil)
