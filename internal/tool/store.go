package tool

import (
	"context"

	"github.com/spec-kit/support-mesh/internal/domain"
)

// Store is the storage-adapter contract the dispatcher executes against.
// Lookups for absent records return a nil record and a nil error; any non-nil
// error is an unexpected storage failure. Implementations must be safe for
// concurrent use: the dispatcher shares one Store across all invocations and
// introduces no per-entity locking, so concurrent writes to the same record
// race at the adapter's discretion (last write wins).
type Store interface {
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context, status *string, limit int) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error)
	CreateTicket(ctx context.Context, customerID int64, issue, priority string) (domain.Ticket, error)
	ListInteractions(ctx context.Context, customerID int64) ([]domain.Interaction, error)
}
