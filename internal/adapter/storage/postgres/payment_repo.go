package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"listing-automation-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, external_session_id, external_invoice_id, user_id, order_id,
			amount_minor, currency, status, environment, settled_at, created_at, updated_at`

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// UpsertBySessionID inserts or updates the payment mirror keyed by the
// external session id. Both webhook ingestion and reconciliation write
// through here, so re-observing a session is always idempotent. The
// (xmax = 0) expression is true only for freshly inserted rows, which is how
// the created flag is derived without a second round trip.
func (r *PaymentRepo) UpsertBySessionID(ctx context.Context, tx pgx.Tx, rec *domain.PaymentRecord) (bool, error) {
	query := `INSERT INTO payment_records (id, external_session_id, external_invoice_id, user_id, order_id,
			amount_minor, currency, status, environment, settled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
		ON CONFLICT (external_session_id) DO UPDATE SET
			external_invoice_id = COALESCE(EXCLUDED.external_invoice_id, payment_records.external_invoice_id),
			user_id = COALESCE(EXCLUDED.user_id, payment_records.user_id),
			order_id = COALESCE(EXCLUDED.order_id, payment_records.order_id),
			amount_minor = EXCLUDED.amount_minor,
			currency = EXCLUDED.currency,
			status = EXCLUDED.status,
			settled_at = EXCLUDED.settled_at,
			updated_at = now()
		RETURNING (xmax = 0)`

	var created bool
	err := tx.QueryRow(ctx, query,
		rec.ID, rec.ExternalSessionID, rec.ExternalInvoiceID, rec.UserID, rec.OrderID,
		rec.AmountMinor, rec.Currency, rec.Status, rec.Environment, rec.SettledAt,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("upsert payment record: %w", err)
	}
	return created, nil
}

// GetBySessionID fetches a payment record by its external session id.
// Returns (nil, nil) when no record exists.
func (r *PaymentRepo) GetBySessionID(ctx context.Context, sessionID string) (*domain.PaymentRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM payment_records WHERE external_session_id = $1`, paymentColumns)

	rec := &domain.PaymentRecord{}
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(
		&rec.ID, &rec.ExternalSessionID, &rec.ExternalInvoiceID, &rec.UserID, &rec.OrderID,
		&rec.AmountMinor, &rec.Currency, &rec.Status, &rec.Environment,
		&rec.SettledAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment record: %w", err)
	}
	return rec, nil
}

// ListSettledSince returns settled records from the window, newest first.
// An empty currency matches all currencies.
func (r *PaymentRepo) ListSettledSince(ctx context.Context, since time.Time, currency string) ([]domain.PaymentRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM payment_records
		WHERE status = 'settled' AND settled_at >= $1 AND ($2 = '' OR currency = $2)
		ORDER BY settled_at DESC`, paymentColumns)

	rows, err := r.pool.Query(ctx, query, since, currency)
	if err != nil {
		return nil, fmt.Errorf("list settled payments: %w", err)
	}
	defer rows.Close()

	var records []domain.PaymentRecord
	for rows.Next() {
		var rec domain.PaymentRecord
		err := rows.Scan(
			&rec.ID, &rec.ExternalSessionID, &rec.ExternalInvoiceID, &rec.UserID, &rec.OrderID,
			&rec.AmountMinor, &rec.Currency, &rec.Status, &rec.Environment,
			&rec.SettledAt, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payment record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}
	return records, nil
}
