package domain

import "github.com/google/uuid"

// Role indicates whether a message was authored by the user or an agent.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// TextPart is a single text fragment within a message.
type TextPart struct {
	Text string `json:"text"`
}

// Message is one unit of conversation content exchanged between agents. A
// message may reference at most one task and one conversational context; both
// references are lookup keys, not owned pointers.
type Message struct {
	MessageID string     `json:"messageId"`
	Role      Role       `json:"role"`
	Parts     []TextPart `json:"parts"`
	TaskID    string     `json:"taskId,omitempty"`
	ContextID string     `json:"contextId,omitempty"`
}

// NewTextMessage builds a single-part text message with a fresh id. Task and
// context ids may be empty when the message is not bound to a task yet.
func NewTextMessage(role Role, text, taskID, contextID string) Message {
	return Message{
		MessageID: uuid.NewString(),
		Role:      role,
		Parts:     []TextPart{{Text: text}},
		TaskID:    taskID,
		ContextID: contextID,
	}
}

// Text concatenates the message's parts into a single string.
func (m Message) Text() string {
	switch len(m.Parts) {
	case 0:
		return ""
	case 1:
		return m.Parts[0].Text
	}
	var out string
	for _, p := range m.Parts {
		out += p.Text
	}
	return out
}
