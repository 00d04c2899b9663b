package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// MarkPaid transitions an order pending -> paid. The status predicate makes
// the transition one-way: a paid order matched zero rows and stays paid.
func (r *OrderRepo) MarkPaid(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (bool, error) {
	query := `UPDATE orders
		SET status = 'paid', paid_at = now(), updated_at = now()
		WHERE id = $1 AND status = 'pending'`

	tag, err := tx.Exec(ctx, query, orderID)
	if err != nil {
		return false, fmt.Errorf("mark order paid: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
