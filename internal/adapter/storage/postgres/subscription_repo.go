package postgres

import (
	"context"
	"errors"
	"fmt"

	"listing-automation-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SubscriptionRepo implements ports.SubscriptionRepository.
type SubscriptionRepo struct {
	pool Pool
}

// NewSubscriptionRepo creates a new SubscriptionRepo.
func NewSubscriptionRepo(pool Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

// HasActive reports whether the user holds an active or trialing subscription.
func (r *SubscriptionRepo) HasActive(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM subscriptions
		WHERE user_id = $1 AND status IN ('active', 'trialing')
	)`

	var active bool
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&active); err != nil {
		return false, fmt.Errorf("check active subscription: %w", err)
	}
	return active, nil
}

// GetByUserID fetches the user's most recent subscription. Returns (nil, nil)
// when the user has none.
func (r *SubscriptionRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error) {
	query := `SELECT id, user_id, plan_id, status, current_period_end, created_at
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	sub := &domain.Subscription{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&sub.ID, &sub.UserID, &sub.PlanID, &sub.Status,
		&sub.CurrentPeriodEnd, &sub.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return sub, nil
}
