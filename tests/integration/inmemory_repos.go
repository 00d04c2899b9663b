package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"listing-automation-service/internal/core/domain"
	"listing-automation-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// fakeTx satisfies pgx.Tx for repos that only need Commit/Rollback.
type fakeTx struct{ pgx.Tx }

func (t *fakeTx) Commit(_ context.Context) error   { return nil }
func (t *fakeTx) Rollback(_ context.Context) error { return nil }

type fakeTransactor struct{}

func (f *fakeTransactor) Begin(_ context.Context) (pgx.Tx, error) { return &fakeTx{}, nil }

// --- In-Memory Job Repo ---

// inMemoryJobRepo reproduces the storage-level claim/report semantics with a
// mutex standing in for row locks: claim-next picks the oldest eligible job,
// report is a compare-and-swap on (id, worker, processing).
type inMemoryJobRepo struct {
	mu    sync.Mutex
	jobs  map[uuid.UUID]*domain.ListingJob
	order []uuid.UUID
}

func newInMemoryJobRepo() *inMemoryJobRepo {
	return &inMemoryJobRepo{jobs: make(map[uuid.UUID]*domain.ListingJob)}
}

func (r *inMemoryJobRepo) Enqueue(_ context.Context, job *domain.ListingJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.jobs[job.ID]; exists {
		return fmt.Errorf("job already enqueued")
	}
	stored := *job
	r.jobs[job.ID] = &stored
	r.order = append(r.order, job.ID)
	return nil
}

func (r *inMemoryJobRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ListingJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *job
	return &cp, nil
}

func (r *inMemoryJobRepo) ClaimNext(_ context.Context, userID uuid.UUID, workerID string, staleBefore time.Time) (*domain.ListingJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		job := r.jobs[id]
		if job.UserID != userID {
			continue
		}
		eligible := job.Status == domain.JobStatusQueued ||
			(job.Status == domain.JobStatusProcessing && job.ClaimedAt != nil && job.ClaimedAt.Before(staleBefore))
		if !eligible {
			continue
		}
		now := time.Now().UTC()
		job.Status = domain.JobStatusProcessing
		job.WorkerID = &workerID
		job.ClaimedAt = &now
		cp := *job
		return &cp, nil
	}
	return nil, nil
}

func (r *inMemoryJobRepo) Report(_ context.Context, p ports.JobReportParams) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[p.JobID]
	if !ok {
		return false, nil
	}
	if job.Status != domain.JobStatusProcessing || job.WorkerID == nil || *job.WorkerID != p.WorkerID {
		return false, nil
	}
	now := time.Now().UTC()
	job.Status = p.Status
	job.ReportedAt = &now
	if p.LastError != nil {
		job.LastError = p.LastError
	}
	if p.ExternalListingID != nil {
		job.ExternalListingID = p.ExternalListingID
	}
	if p.ExternalProductID != nil {
		job.ExternalProductID = p.ExternalProductID
	}
	return true, nil
}

// setClaimedAt backdates a claim so staleness paths can be exercised.
func (r *inMemoryJobRepo) setClaimedAt(id uuid.UUID, claimedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job, ok := r.jobs[id]; ok {
		job.ClaimedAt = &claimedAt
	}
}

// --- In-Memory Subscription Repo ---

type inMemorySubscriptionRepo struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]*domain.Subscription
}

func newInMemorySubscriptionRepo() *inMemorySubscriptionRepo {
	return &inMemorySubscriptionRepo{subs: make(map[uuid.UUID]*domain.Subscription)}
}

func (r *inMemorySubscriptionRepo) put(sub *domain.Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.UserID] = sub
}

func (r *inMemorySubscriptionRepo) HasActive(_ context.Context, userID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.subs[userID]
	return ok && sub.IsActive(), nil
}

func (r *inMemorySubscriptionRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.subs[userID]
	if !ok {
		return nil, nil
	}
	cp := *sub
	return &cp, nil
}

// --- In-Memory Payment Repo ---

type inMemoryPaymentRepo struct {
	mu      sync.Mutex
	records map[string]*domain.PaymentRecord // keyed by external session id
}

func newInMemoryPaymentRepo() *inMemoryPaymentRepo {
	return &inMemoryPaymentRepo{records: make(map[string]*domain.PaymentRecord)}
}

func (r *inMemoryPaymentRepo) UpsertBySessionID(_ context.Context, _ pgx.Tx, rec *domain.PaymentRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.records[rec.ExternalSessionID]; ok {
		rec.ID = existing.ID
		stored := *rec
		r.records[rec.ExternalSessionID] = &stored
		return false, nil
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	stored := *rec
	r.records[rec.ExternalSessionID] = &stored
	return true, nil
}

func (r *inMemoryPaymentRepo) GetBySessionID(_ context.Context, sessionID string) (*domain.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *inMemoryPaymentRepo) ListSettledSince(_ context.Context, since time.Time, currency string) ([]domain.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.PaymentRecord
	for _, rec := range r.records {
		if rec.Status != domain.PaymentStatusSettled || rec.SettledAt.Before(since) {
			continue
		}
		if currency != "" && rec.Currency != currency {
			continue
		}
		out = append(out, *rec)
	}
	return out, nil
}

// --- In-Memory Order Repo ---

type inMemoryOrderRepo struct {
	mu     sync.Mutex
	status map[uuid.UUID]string
}

func newInMemoryOrderRepo() *inMemoryOrderRepo {
	return &inMemoryOrderRepo{status: make(map[uuid.UUID]string)}
}

func (r *inMemoryOrderRepo) seed(orderID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[orderID] = "pending"
}

func (r *inMemoryOrderRepo) statusOf(orderID uuid.UUID) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status[orderID]
}

func (r *inMemoryOrderRepo) MarkPaid(_ context.Context, _ pgx.Tx, orderID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status[orderID] != "pending" {
		return false, nil
	}
	r.status[orderID] = "paid"
	return true, nil
}

// --- Stub Ledger Client ---

// stubLedger serves a fixed session set for one environment, single page.
type stubLedger struct {
	env      domain.BillingEnvironment
	sessions []ports.CheckoutSession
	invoices []ports.LedgerInvoice
}

func (s *stubLedger) Environments() []domain.BillingEnvironment {
	return []domain.BillingEnvironment{s.env}
}

func (s *stubLedger) ListPaidInvoices(_ context.Context, _ domain.BillingEnvironment, _ string, _ int) (*ports.InvoicePage, error) {
	return &ports.InvoicePage{Invoices: s.invoices}, nil
}

func (s *stubLedger) ListCheckoutSessions(_ context.Context, _ domain.BillingEnvironment, _ time.Time, _ string, _ int) (*ports.SessionPage, error) {
	return &ports.SessionPage{Sessions: s.sessions}, nil
}
