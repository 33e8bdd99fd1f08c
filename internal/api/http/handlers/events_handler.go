package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/spec-kit/support-mesh/internal/events"
)

const heartbeatInterval = 30 * time.Second

// EventsHandler exposes the broadcaster as an SSE stream.
type EventsHandler struct {
	broadcaster *events.Broadcaster
	logger      *zap.Logger
}

// NewEventsHandler constructs handler.
func NewEventsHandler(broadcaster *events.Broadcaster, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{broadcaster: broadcaster, logger: logger}
}

// Stream GET /events/stream. One SSE frame per published event, starting with
// events published after the connection is accepted. Closing the connection
// is the only way to stop receiving.
func (h *EventsHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	// Subscribe before the response starts so no event published after the
	// request was accepted can be missed.
	sub := h.broadcaster.Subscribe()

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer sub.Close()

		heartbeat := time.NewTicker(heartbeatInterval)
		defer heartbeat.Stop()

		for {
			select {
			case event, ok := <-sub.Events():
				if !ok {
					return
				}
				if err := writeSSEEvent(w, "update", event); err != nil {
					h.logger.Debug("sse client gone", zap.Error(err))
					return
				}
			case <-heartbeat.C:
				if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}

func writeSSEEvent(w *bufio.Writer, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	return w.Flush()
}
