package ports

import (
	"context"
	"time"

	"listing-automation-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// JobRepository defines persistence for the listing-job queue. Claim and
// report rely on storage-level conditional updates: workers are distributed,
// so in-process locking cannot provide the at-most-one-claim guarantee.
type JobRepository interface {
	Enqueue(ctx context.Context, job *domain.ListingJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ListingJob, error)
	// ClaimNext atomically claims the oldest eligible job for the user:
	// queued, or processing with a claim older than staleBefore. Returns
	// (nil, nil) when no job is eligible.
	ClaimNext(ctx context.Context, userID uuid.UUID, workerID string, staleBefore time.Time) (*domain.ListingJob, error)
	// Report applies a terminal outcome with a compare-and-swap on
	// (id, worker, status=processing). Returns false with nil error when
	// zero rows matched (lost race or already reported), distinguishing
	// that from a true storage error.
	Report(ctx context.Context, p JobReportParams) (bool, error)
}

// JobReportParams holds a terminal outcome report for one job.
type JobReportParams struct {
	JobID             uuid.UUID
	WorkerID          string
	Status            domain.JobStatus
	LastError         *string
	ExternalListingID *string
	ExternalProductID *string
}

// SubscriptionRepository exposes the billing state used to gate job claims.
type SubscriptionRepository interface {
	HasActive(ctx context.Context, userID uuid.UUID) (bool, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error)
}

// WebhookConfigRepository defines persistence for outbound webhook configs.
// Writes tolerate storage schemas missing optional columns (description,
// scope, updated_at); reads are snapshot-consistent under concurrent writes.
type WebhookConfigRepository interface {
	Create(ctx context.Context, cfg *domain.WebhookConfig) error
	Update(ctx context.Context, cfg *domain.WebhookConfig) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookConfig, error)
	List(ctx context.Context) ([]domain.WebhookConfig, error)
	ListEnabled(ctx context.Context) ([]domain.WebhookConfig, error)
	// FindDuplicate looks for another enabled config with the same scope,
	// target URL and method. excludeID skips the config being updated.
	FindDuplicate(ctx context.Context, scope domain.ConfigScope, targetURL, method string, excludeID uuid.UUID) (*domain.WebhookConfig, error)
}

// DispatchLogRepository persists dispatch audit rows.
type DispatchLogRepository interface {
	Create(ctx context.Context, log *domain.DispatchLog) error
	ListRecent(ctx context.Context, limit int) ([]domain.DispatchLog, error)
}

// PaymentRepository defines persistence for mirrored payment records.
// Methods accepting pgx.Tx run inside transaction blocks so a payment upsert
// and its order transition commit together.
type PaymentRepository interface {
	// UpsertBySessionID inserts or updates the record keyed by external
	// session identity. Returns true when a new row was created.
	UpsertBySessionID(ctx context.Context, tx pgx.Tx, rec *domain.PaymentRecord) (bool, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.PaymentRecord, error)
	// ListSettledSince returns local settled records from the window,
	// including their external invoice tags for merge precedence.
	ListSettledSince(ctx context.Context, since time.Time, currency string) ([]domain.PaymentRecord, error)
}

// OrderRepository mutates order payment state.
type OrderRepository interface {
	// MarkPaid transitions pending -> paid. Returns false with nil error
	// when zero rows matched (already paid, or unknown order); a paid
	// order is never regressed.
	MarkPaid(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (bool, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
