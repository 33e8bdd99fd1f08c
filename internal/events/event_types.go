package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	// EventAudit records a read-only tool call (get_customer, list_customers).
	EventAudit EventType = "audit"
	// EventUpdate records a successful customer mutation.
	EventUpdate EventType = "update"
	// EventTicket records a newly created support ticket.
	EventTicket EventType = "ticket"
	// EventHistory records an interaction-history read.
	EventHistory EventType = "history"
)

// Event describes one successfully completed tool invocation. Events are
// ephemeral: they exist only while in transit through the Broadcaster.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Tool       string    `json:"tool"`
	CustomerID *int64    `json:"customer_id,omitempty"`
	TicketID   *int64    `json:"ticket_id,omitempty"`
	Count      *int      `json:"count,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, tool string) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Tool:      tool,
		Timestamp: time.Now().UTC(),
	}
}

// WithCustomer attaches the affected customer id.
func (e Event) WithCustomer(id int64) Event {
	e.CustomerID = &id
	return e
}

// WithTicket attaches the created ticket id.
func (e Event) WithTicket(id int64) Event {
	e.TicketID = &id
	return e
}

// WithCount attaches the returned record count.
func (e Event) WithCount(n int) Event {
	e.Count = &n
	return e
}
