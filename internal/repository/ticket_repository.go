package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/support-mesh/internal/domain"
)

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, customerID int64, issue, priority string) (domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates the repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

// Create inserts a ticket with status forced to open regardless of caller
// input, returning the full record including its assigned id and timestamp.
func (r *ticketRepository) Create(ctx context.Context, customerID int64, issue, priority string) (domain.Ticket, error) {
	const query = `
        INSERT INTO tickets (customer_id, issue, priority, status)
        VALUES ($1,$2,$3,'open')
        RETURNING id, customer_id, issue, priority, status, created_at`
	var ticket domain.Ticket
	err := r.pool.QueryRow(ctx, query, customerID, issue, priority).Scan(
		&ticket.ID,
		&ticket.CustomerID,
		&ticket.Issue,
		&ticket.Priority,
		&ticket.Status,
		&ticket.CreatedAt,
	)
	return ticket, err
}
