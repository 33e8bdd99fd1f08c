package domain

import "time"

// Customer is the domain model for customers managed through the tool layer.
// Status is an open string set (e.g. active, delinquent, vip) assigned by
// whoever seeds or updates the record; the core does not enforce an enum.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerPatch carries the updatable customer fields. Nil means "leave as is".
type CustomerPatch struct {
	Name   *string
	Email  *string
	Status *string
}

// Empty reports whether the patch carries no recognized field.
func (p CustomerPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Status == nil
}
