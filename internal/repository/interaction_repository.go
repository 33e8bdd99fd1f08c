package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/support-mesh/internal/domain"
)

// InteractionRepository reads the append-only interaction log.
type InteractionRepository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Interaction, error)
}

type interactionRepository struct {
	pool *pgxpool.Pool
}

// NewInteractionRepository instantiates the repository.
func NewInteractionRepository(pool *pgxpool.Pool) InteractionRepository {
	return &interactionRepository{pool: pool}
}

// ListByCustomer returns interactions newest-first. A customer without
// interactions yields an empty result, not an error.
func (r *interactionRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Interaction, error) {
	const query = `
        SELECT id, customer_id, channel, notes, created_at
        FROM interactions
        WHERE customer_id=$1
        ORDER BY created_at DESC, id DESC`
	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Interaction
	for rows.Next() {
		var interaction domain.Interaction
		if err := rows.Scan(
			&interaction.ID,
			&interaction.CustomerID,
			&interaction.Channel,
			&interaction.Notes,
			&interaction.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, interaction)
	}
	return result, rows.Err()
}
