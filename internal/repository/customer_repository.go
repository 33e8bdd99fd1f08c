package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/support-mesh/internal/domain"
	"github.com/spec-kit/support-mesh/internal/persistence"
)

const customerCacheTTL = 5 * time.Minute

// CustomerRepository encapsulates customer persistence. Absent records are
// reported as (nil, nil), not as an error.
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, status *string, limit int) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error)
}

type customerRepository struct {
	pool  *pgxpool.Pool
	cache *persistence.Redis
}

// NewCustomerRepository instantiates the repository. The cache is optional;
// when present, GetByID is cache-aside and Update invalidates the entry.
func NewCustomerRepository(pool *pgxpool.Pool, cache *persistence.Redis) CustomerRepository {
	return &customerRepository{pool: pool, cache: cache}
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if cached := r.fromCache(ctx, id); cached != nil {
		return cached, nil
	}

	const query = `
        SELECT id, name, email, status, created_at
        FROM customers WHERE id=$1`
	var customer domain.Customer
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Status,
		&customer.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	r.toCache(ctx, &customer)
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context, status *string, limit int) ([]domain.Customer, error) {
	base := `SELECT id, name, email, status, created_at FROM customers`
	clauses := []string{"1=1"}
	args := []any{}

	if status != nil && strings.TrimSpace(*status) != "" {
		args = append(args, *status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}

	if limit <= 0 {
		limit = 20
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY id LIMIT %d`, base, strings.Join(clauses, " AND "), limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.Status,
			&customer.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, customer)
	}
	return result, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	assignments := []string{}
	args := []any{}
	if patch.Name != nil {
		args = append(args, *patch.Name)
		assignments = append(assignments, fmt.Sprintf("name=$%d", len(args)))
	}
	if patch.Email != nil {
		args = append(args, *patch.Email)
		assignments = append(assignments, fmt.Sprintf("email=$%d", len(args)))
	}
	if patch.Status != nil {
		args = append(args, *patch.Status)
		assignments = append(assignments, fmt.Sprintf("status=$%d", len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(`
        UPDATE customers SET %s WHERE id=$%d
        RETURNING id, name, email, status, created_at`,
		strings.Join(assignments, ", "), len(args))

	var customer domain.Customer
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Status,
		&customer.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	r.invalidate(ctx, id)
	return &customer, nil
}

// Cache helpers are best-effort: an unreachable cache never fails a read.

func (r *customerRepository) fromCache(ctx context.Context, id int64) *domain.Customer {
	if r.cache == nil {
		return nil
	}
	var customer domain.Customer
	if !r.cache.GetJSON(ctx, customerCacheKey(id), &customer) {
		return nil
	}
	return &customer
}

func (r *customerRepository) toCache(ctx context.Context, customer *domain.Customer) {
	if r.cache == nil {
		return
	}
	r.cache.SetJSON(ctx, customerCacheKey(customer.ID), customer, customerCacheTTL)
}

func (r *customerRepository) invalidate(ctx context.Context, id int64) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, customerCacheKey(id))
}

func customerCacheKey(id int64) string {
	return fmt.Sprintf("customer:%d", id)
}
