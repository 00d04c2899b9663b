package postgres

import (
	"context"
	"testing"
	"time"

	"listing-automation-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepo_HasActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionRepo(mock)
	userID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	active, err := repo.HasActive(context.Background(), userID)
	assert.NoError(t, err)
	assert.True(t, active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepo_HasActive_None(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionRepo(mock)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	active, err := repo.HasActive(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.False(t, active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepo_GetByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionRepo(mock)
	userID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM subscriptions WHERE user_id").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(
			[]string{"id", "user_id", "plan_id", "status", "current_period_end", "created_at"},
		).AddRow(uuid.New(), userID, "pro-monthly", domain.SubscriptionStatusTrialing, &now, now))

	sub, err := repo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, "pro-monthly", sub.PlanID)
	assert.True(t, sub.IsActive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionRepo_GetByUserID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM subscriptions WHERE user_id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(
			[]string{"id", "user_id", "plan_id", "status", "current_period_end", "created_at"},
		))

	sub, err := repo.GetByUserID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, sub)
	assert.NoError(t, mock.ExpectationsWereMet())
}
