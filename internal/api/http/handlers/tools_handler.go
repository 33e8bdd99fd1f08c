package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-mesh/internal/api/dto"
	"github.com/spec-kit/support-mesh/internal/observability"
	"github.com/spec-kit/support-mesh/internal/tool"
	apperrors "github.com/spec-kit/support-mesh/pkg/util"
)

// ToolsHandler serves tool discovery and invocation.
type ToolsHandler struct {
	dispatcher *tool.Dispatcher
	metrics    *observability.Metrics
}

// NewToolsHandler constructs handler.
func NewToolsHandler(dispatcher *tool.Dispatcher, metrics *observability.Metrics) *ToolsHandler {
	return &ToolsHandler{dispatcher: dispatcher, metrics: metrics}
}

// List POST /tools/list.
func (h *ToolsHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.ToolListResponse{Tools: h.dispatcher.Registry().List()})
}

// Call POST /tools/call.
func (h *ToolsHandler) Call(c *fiber.Ctx) error {
	var req dto.InvokeToolRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	result, err := h.dispatcher.Invoke(c.UserContext(), tool.InvocationRequest{
		Name:      req.Name,
		Arguments: req.Arguments,
	})
	h.metrics.RecordToolInvocation(req.Name, err != nil)
	if err != nil {
		return err
	}
	return c.JSON(dto.InvokeToolResponse{Result: result})
}
