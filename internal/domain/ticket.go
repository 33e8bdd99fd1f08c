package domain

import "time"

// TicketStatus enumerates lifecycle states for support tickets.
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "open"
	TicketStatusClosed TicketStatus = "closed"
)

// Ticket is a support request opened against a customer. Tickets are created
// exclusively through the create_ticket tool and are never deleted.
type Ticket struct {
	ID         int64        `json:"id"`
	CustomerID int64        `json:"customer_id"`
	Issue      string       `json:"issue"`
	Priority   string       `json:"priority"`
	Status     TicketStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
}
