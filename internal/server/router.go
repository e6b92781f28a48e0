package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GuideHandler describes the component responsible for rendering a guide
// body. It allows injecting fake handlers during tests.
type GuideHandler interface {
	Handle(fiber.Ctx, *GuideRoute) error
}

// GuideHandlerFunc adapts a function to the GuideHandler interface.
type GuideHandlerFunc func(fiber.Ctx, *GuideRoute) error

// Handle makes GuideHandlerFunc satisfy GuideHandler.
func (f GuideHandlerFunc) Handle(c fiber.Ctx, route *GuideRoute) error {
	return f(c, route)
}

// AppOptions controls how the Fiber application should behave on a specific port.
type AppOptions struct {
	Logger     *logrus.Logger
	Registry   *GuideRegistry
	Guides     GuideHandler
	ListenPort int
}

const contextKeyRequestID = "_guidehub_request_id"

// NewApp builds a Fiber application with guide routing middleware and
// structured error handling.
func NewApp(opts AppOptions) (*fiber.App, error) {
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if opts.Registry == nil {
		return nil, errors.New("guide registry is required")
	}
	if opts.Guides == nil {
		return nil, errors.New("guide handler is required")
	}
	if opts.ListenPort <= 0 {
		return nil, fmt.Errorf("invalid listen port: %d", opts.ListenPort)
	}

	app := fiber.New(fiber.Config{
		CaseSensitive: true,
	})

	app.Use(recover.New())
	app.Use(requestContextMiddleware())

	app.Get("/guides/:key", func(c fiber.Ctx) error {
		key := strings.TrimSpace(c.Params("key"))
		route, ok := opts.Registry.Lookup(key)
		if !ok {
			return renderGuideUnknown(c, opts.Logger, key)
		}
		return opts.Guides.Handle(c, route)
	})

	return app, nil
}

// requestContextMiddleware 负责生成请求 ID，供日志与响应头复用。
func requestContextMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		reqID := uuid.NewString()
		c.Locals(contextKeyRequestID, reqID)
		c.Set("X-Request-ID", reqID)
		return c.Next()
	}
}

func renderGuideUnknown(c fiber.Ctx, logger *logrus.Logger, key string) error {
	logger.WithFields(logrus.Fields{
		"action": "guide_lookup",
		"guide":  key,
	}).Warn("guide unknown")

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "guide_unknown",
	})
}

// RequestID returns the request identifier stored by the router middleware.
func RequestID(c fiber.Ctx) string {
	if value := c.Locals(contextKeyRequestID); value != nil {
		if reqID, ok := value.(string); ok {
			return reqID
		}
	}
	return ""
}
