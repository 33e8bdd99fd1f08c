package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-mesh/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Tools  *handlers.ToolsHandler
	Events *handlers.EventsHandler
	Agents *handlers.AgentsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Health)
	app.Get("/health/ready", cfg.Health.Ready)

	toolsGroup := app.Group("/tools")
	toolsGroup.Post("/list", cfg.Tools.List)
	toolsGroup.Post("/call", cfg.Tools.Call)

	app.Get("/events/stream", cfg.Events.Stream)

	agentsGroup := app.Group("/agents")
	agentsGroup.Get("/:name/card", cfg.Agents.Card)
	agentsGroup.Post("/:name/messages", cfg.Agents.SendMessage)
	agentsGroup.Post("/:name/messages/stream", cfg.Agents.StreamMessage)
}
