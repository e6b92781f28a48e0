package routes

import (
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/guide-hub/guide-hub/internal/guide"
	"github.com/guide-hub/guide-hub/internal/server"
)

// RegisterGuideRoutes 暴露 /-/ 诊断接口，供运维查询模块与指南绑定关系。
func RegisterGuideRoutes(app *fiber.App, registry *server.GuideRegistry) {
	if app == nil || registry == nil {
		return
	}

	app.Get("/-/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/-/guides", func(c fiber.Ctx) error {
		payload := fiber.Map{
			"modules": encodeModules(guide.List()),
			"guides":  encodeGuideBindings(registry.List()),
		}
		return c.JSON(payload)
	})

	app.Get("/-/guides/:key", func(c fiber.Ctx) error {
		key := strings.ToLower(strings.TrimSpace(c.Params("key")))
		if key == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "guide_key_required"})
		}
		meta, ok := guide.Resolve(key)
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "module_not_found"})
		}
		return c.JSON(encodeModule(meta))
	})
}

type modulePayload struct {
	Key           string `json:"key"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	SourceFile    string `json:"source_file"`
	TTLSeconds    int64  `json:"ttl_seconds"`
	FallbackBytes int    `json:"fallback_bytes"`
}

type guideBindingPayload struct {
	GuideName  string `json:"guide_name"`
	ModuleKey  string `json:"module_key"`
	Source     string `json:"source"`
	TTLSeconds int64  `json:"ttl_seconds"`
}

func encodeModules(mods []guide.Metadata) []modulePayload {
	if len(mods) == 0 {
		return nil
	}
	sort.Slice(mods, func(i, j int) bool {
		return mods[i].Key < mods[j].Key
	})
	result := make([]modulePayload, 0, len(mods))
	for _, meta := range mods {
		result = append(result, encodeModule(meta))
	}
	return result
}

func encodeModule(meta guide.Metadata) modulePayload {
	return modulePayload{
		Key:           meta.Key,
		Title:         meta.Title,
		Description:   meta.Description,
		SourceFile:    meta.SourceFile,
		TTLSeconds:    int64(meta.TTLHint / time.Second),
		FallbackBytes: len(meta.Fallback),
	}
}

func encodeGuideBindings(routes []server.GuideRoute) []guideBindingPayload {
	if len(routes) == 0 {
		return nil
	}
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Config.Name < routes[j].Config.Name
	})
	result := make([]guideBindingPayload, 0, len(routes))
	for _, route := range routes {
		result = append(result, guideBindingPayload{
			GuideName:  route.Config.Name,
			ModuleKey:  route.ModuleKey,
			Source:     route.SourceKey,
			TTLSeconds: int64(route.CacheTTL / time.Second),
		})
	}
	return result
}
