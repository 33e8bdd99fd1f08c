package repository

import (
	"context"

	"github.com/spec-kit/support-mesh/internal/domain"
)

// Store composes the per-aggregate repositories into the flat storage-adapter
// contract the tool dispatcher consumes.
type Store struct {
	customers    CustomerRepository
	tickets      TicketRepository
	interactions InteractionRepository
}

// NewStore bundles the repositories.
func NewStore(customers CustomerRepository, tickets TicketRepository, interactions InteractionRepository) *Store {
	return &Store{
		customers:    customers,
		tickets:      tickets,
		interactions: interactions,
	}
}

func (s *Store) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

func (s *Store) ListCustomers(ctx context.Context, status *string, limit int) ([]domain.Customer, error) {
	return s.customers.List(ctx, status, limit)
}

func (s *Store) UpdateCustomer(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	return s.customers.Update(ctx, id, patch)
}

func (s *Store) CreateTicket(ctx context.Context, customerID int64, issue, priority string) (domain.Ticket, error) {
	return s.tickets.Create(ctx, customerID, issue, priority)
}

func (s *Store) ListInteractions(ctx context.Context, customerID int64) ([]domain.Interaction, error) {
	return s.interactions.ListByCustomer(ctx, customerID)
}
