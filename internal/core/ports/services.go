package ports

import (
	"context"
	"time"

	"listing-automation-service/internal/core/domain"

	"github.com/google/uuid"
)

// JobQueueService is the worker-facing claim/report protocol.
type JobQueueService interface {
	// ClaimNext returns the next eligible job for the user, or nil when
	// none exists or the user holds no active subscription.
	ClaimNext(ctx context.Context, userID uuid.UUID, preferredWorkerID string) (*domain.ListingJob, error)
	// Report applies a terminal outcome. Reporting the same terminal
	// status twice is a benign no-op returning updated=false.
	Report(ctx context.Context, req JobReportRequest) (bool, error)
}

// JobReportRequest holds validated input for a job outcome report.
type JobReportRequest struct {
	JobID             uuid.UUID
	WorkerID          string
	Status            domain.JobStatus
	Error             *string
	ExternalListingID *string
	ExternalProductID *string
}

// DispatchSummary aggregates one dispatch tick.
type DispatchSummary struct {
	Configs          int      `json:"configs"`
	Delivered        int      `json:"delivered"`
	Failed           int      `json:"failed"`
	SkippedDuplicate int      `json:"skipped_duplicate"`
	Warnings         []string `json:"warnings,omitempty"`
}

// LifecycleSyncResult reports the outcome of bootstrapping the external cron
// provider. A rate-limited provider yields OutcomeSkippedRateLimit so callers
// can distinguish "broken" from "temporarily throttled".
type LifecycleSyncResult struct {
	Outcome    domain.DispatchOutcome `json:"outcome"`
	StatusCode int                    `json:"status_code,omitempty"`
	Message    string                 `json:"message,omitempty"`
}

// DispatchService runs webhook dispatch ticks and manages configs.
type DispatchService interface {
	RunTick(ctx context.Context, principal string) (*DispatchSummary, error)
	SyncLifecycle(ctx context.Context, principal string) (*LifecycleSyncResult, error)
	CreateConfig(ctx context.Context, cfg *domain.WebhookConfig) (*domain.WebhookConfig, error)
	UpdateConfig(ctx context.Context, cfg *domain.WebhookConfig) (*domain.WebhookConfig, error)
	DeleteConfig(ctx context.Context, id uuid.UUID) error
	ListConfigs(ctx context.Context) ([]domain.WebhookConfig, error)
	RecentLogs(ctx context.Context, limit int) ([]domain.DispatchLog, error)
}

// ReconcileRequest selects the scope of an order reconciliation run.
type ReconcileRequest struct {
	Mode        string // live, test, or all
	WindowDays  int
	MaxSessions int // Per-page session limit passed to the provider
	DryRun      bool
}

// ReconcileResult is the structured outcome of one reconciliation run.
// Partial provider errors surface in Warnings/Failures without aborting the
// accumulated result.
type ReconcileResult struct {
	Scanned          int      `json:"scanned"`
	Eligible         int      `json:"eligible"`
	PaidCandidates   int      `json:"paid_candidates"`
	Synced           int      `json:"synced"`
	OrdersMarkedPaid int      `json:"orders_marked_paid"`
	Skipped          int      `json:"skipped"`
	Failures         []string `json:"failures"`
	Warnings         []string `json:"warnings"`
}

// ReconciliationService aligns local payment records and orders with the
// external ledger.
type ReconciliationService interface {
	ReconcileOrders(ctx context.Context, req ReconcileRequest) (*ReconcileResult, error)
}

// PaymentIngestor is the shared write path for settled checkout sessions,
// used by both live webhook ingestion and after-the-fact reconciliation so a
// session is never recorded twice.
type PaymentIngestor interface {
	// IngestSession upserts the payment record and, when the session
	// carries an order identity, idempotently marks the order paid.
	// Returns (created, orderMarkedPaid, error).
	IngestSession(ctx context.Context, env domain.BillingEnvironment, sess CheckoutSession) (bool, bool, error)
}

// RevenueRequest selects the scope of a revenue aggregation.
type RevenueRequest struct {
	Months   int    // 1..24 calendar months ending now
	Mode     string // live, test, or all
	Currency string // Optional ISO currency filter
}

// MonthBucket is one calendar month of merged revenue.
type MonthBucket struct {
	MonthKey         string `json:"month_key"` // YYYY-MM in UTC
	RevenueMinor     int64  `json:"revenue_minor_units"`
	TransactionCount int    `json:"transaction_count"`
}

// RevenueReport is the merged local+external revenue view.
type RevenueReport struct {
	Series            []MonthBucket `json:"series"`
	TotalRevenueMinor int64         `json:"total_revenue_minor_units"`
	TotalTransactions int           `json:"total_transactions"`
	MoMPercent        float64       `json:"mom_percent"`
	Warnings          []string      `json:"warnings"`
}

// RevenueService merges the local ledger with the external one and buckets
// the result by calendar month.
type RevenueService interface {
	MonthlyRevenue(ctx context.Context, req RevenueRequest) (*RevenueReport, error)
}

// DedupStore is the Redis fast-path guard against duplicate dispatches.
// CheckAndSet atomically records a key; true means the key is new.
type DedupStore interface {
	CheckAndSet(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// TokenService validates worker tokens. Issuance lives in the account
// service; this side only needs Validate, but Generate is kept for tests
// and local tooling.
type TokenService interface {
	Generate(userID uuid.UUID, workerID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed worker token claims.
type TokenClaims struct {
	UserID   uuid.UUID
	WorkerID string
}
