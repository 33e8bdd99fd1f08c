package dto

import "github.com/spec-kit/support-mesh/internal/domain"

// SendMessageRequest is the body of POST /agents/:name/messages.
type SendMessageRequest struct {
	Message domain.Message `json:"message"`
}

// SendMessageResponse carries the finished task and the ordered status
// updates produced while handling the message.
type SendMessageResponse struct {
	Task    domain.Task                    `json:"task"`
	Updates []domain.TaskStatusUpdateEvent `json:"updates"`
}
