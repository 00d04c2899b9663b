package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepo_MarkPaid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders").
		WithArgs(orderID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	marked, err := repo.MarkPaid(context.Background(), tx, orderID)
	assert.NoError(t, err)
	assert.True(t, marked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_MarkPaid_AlreadyPaid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders").
		WithArgs(orderID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	marked, err := repo.MarkPaid(context.Background(), tx, orderID)
	assert.NoError(t, err)
	assert.False(t, marked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
