package domain

import "time"

// Interaction is one append-only history entry for a customer, e.g. a phone
// call or email exchange. History reads return these newest-first.
type Interaction struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	Channel    string    `json:"channel"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}
