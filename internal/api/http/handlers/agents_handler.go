package handlers

import (
	"bufio"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/spec-kit/support-mesh/internal/api/dto"
	"github.com/spec-kit/support-mesh/internal/domain"
	"github.com/spec-kit/support-mesh/internal/service"
	apperrors "github.com/spec-kit/support-mesh/pkg/util"
)

// AgentsHandler serves agent metadata and conversational turns.
type AgentsHandler struct {
	service *service.AgentService
}

// NewAgentsHandler constructs handler.
func NewAgentsHandler(agentService *service.AgentService) *AgentsHandler {
	return &AgentsHandler{service: agentService}
}

// Card GET /agents/:name/card.
func (h *AgentsHandler) Card(c *fiber.Ctx) error {
	card, err := h.service.Card(c.Params("name"))
	if err != nil {
		return err
	}
	return c.JSON(card)
}

// SendMessage POST /agents/:name/messages.
func (h *AgentsHandler) SendMessage(c *fiber.Ctx) error {
	incoming, err := parseIncomingMessage(c)
	if err != nil {
		return err
	}

	result, err := h.service.HandleMessage(c.UserContext(), c.Params("name"), incoming)
	if err != nil {
		return err
	}
	return c.JSON(dto.SendMessageResponse{Task: result.Task, Updates: result.Updates})
}

// StreamMessage POST /agents/:name/messages/stream. Emits each task status
// update as an SSE frame; the frame with final=true is always the last one.
func (h *AgentsHandler) StreamMessage(c *fiber.Ctx) error {
	incoming, err := parseIncomingMessage(c)
	if err != nil {
		return err
	}

	result, err := h.service.HandleMessage(c.UserContext(), c.Params("name"), incoming)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	updates := result.Updates
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		for _, update := range updates {
			if err := writeSSEEvent(w, "status-update", update); err != nil {
				return
			}
		}
	}))

	return nil
}

func parseIncomingMessage(c *fiber.Ctx) (domain.Message, error) {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.Message{}, apperrors.NewValidationError("invalid payload", nil)
	}
	msg := req.Message
	if len(msg.Parts) == 0 {
		return domain.Message{}, apperrors.NewValidationError("message.parts required", nil)
	}
	if msg.Role == "" {
		msg.Role = domain.RoleUser
	}
	if msg.MessageID == "" {
		msg.MessageID = uuid.NewString()
	}
	return msg, nil
}
