package service

import (
	"context"
	"fmt"

	"listing-automation-service/internal/core/domain"
	"listing-automation-service/internal/core/ports"
	"listing-automation-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentIngestServiceImpl implements ports.PaymentIngestor. Live webhook
// events and after-the-fact reconciliation both land here, so a settled
// session observed twice still produces exactly one payment record and at
// most one pending -> paid order transition.
type PaymentIngestServiceImpl struct {
	payRepo    ports.PaymentRepository
	orderRepo  ports.OrderRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewPaymentIngestService creates a new PaymentIngestServiceImpl.
func NewPaymentIngestService(
	payRepo ports.PaymentRepository,
	orderRepo ports.OrderRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *PaymentIngestServiceImpl {
	return &PaymentIngestServiceImpl{
		payRepo:    payRepo,
		orderRepo:  orderRepo,
		transactor: transactor,
		log:        log,
	}
}

// IngestSession upserts the payment mirror for a settled checkout session
// and, when the session carries an order identity in metadata, marks the
// order paid. Both writes commit in one transaction.
func (s *PaymentIngestServiceImpl) IngestSession(ctx context.Context, env domain.BillingEnvironment, sess ports.CheckoutSession) (bool, bool, error) {
	if sess.PaymentStatus != "paid" {
		return false, false, nil
	}

	rec := &domain.PaymentRecord{
		ID:                uuid.New(),
		ExternalSessionID: sess.ID,
		AmountMinor:       sess.AmountMinor,
		Currency:          sess.Currency,
		Status:            domain.PaymentStatusSettled,
		Environment:       env,
		SettledAt:         sess.CreatedAt,
	}

	var orderID *uuid.UUID
	if raw, ok := sess.Metadata["order_id"]; ok && raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			s.log.Warn().
				Str("session_id", sess.ID).
				Str("order_id", raw).
				Msg("Session carries unparseable order id, recording payment only")
		} else {
			orderID = &parsed
			rec.OrderID = &parsed
		}
	}
	if raw, ok := sess.Metadata["user_id"]; ok && raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			rec.UserID = &parsed
		}
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return false, false, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	created, err := s.payRepo.UpsertBySessionID(ctx, tx, rec)
	if err != nil {
		return false, false, apperror.ErrDatabaseError(fmt.Errorf("upsert payment: %w", err))
	}

	orderMarked := false
	if orderID != nil {
		orderMarked, err = s.orderRepo.MarkPaid(ctx, tx, *orderID)
		if err != nil {
			return false, false, apperror.ErrDatabaseError(fmt.Errorf("mark order paid: %w", err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, false, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("session_id", sess.ID).
		Str("env", string(env)).
		Bool("created", created).
		Bool("order_marked_paid", orderMarked).
		Msg("Checkout session ingested")
	return created, orderMarked, nil
}
