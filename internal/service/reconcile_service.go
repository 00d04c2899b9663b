package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"listing-automation-service/internal/core/domain"
	"listing-automation-service/internal/core/ports"
	"listing-automation-service/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWindowDays = 30
	defaultPageSize   = 100
	maxPageSize       = 100
	globalSessionCap  = 2000
)

// ReconciliationServiceImpl implements ports.ReconciliationService.
type ReconciliationServiceImpl struct {
	ledger   ports.LedgerClient
	ingestor ports.PaymentIngestor
	log      zerolog.Logger
}

// NewReconciliationService creates a new ReconciliationServiceImpl.
func NewReconciliationService(
	ledger ports.LedgerClient,
	ingestor ports.PaymentIngestor,
	log zerolog.Logger,
) *ReconciliationServiceImpl {
	return &ReconciliationServiceImpl{
		ledger:   ledger,
		ingestor: ingestor,
		log:      log,
	}
}

// selectEnvironments resolves a mode selector against the environments the
// ledger client holds credentials for.
func selectEnvironments(ledger ports.LedgerClient, mode string) ([]domain.BillingEnvironment, error) {
	available := ledger.Environments()

	var wanted []domain.BillingEnvironment
	switch mode {
	case "", "all":
		wanted = available
	case "live":
		wanted = []domain.BillingEnvironment{domain.EnvLive}
	case "test":
		wanted = []domain.BillingEnvironment{domain.EnvTest}
	default:
		return nil, apperror.Validation(fmt.Sprintf("unknown mode %q, want live, test or all", mode))
	}

	avail := make(map[domain.BillingEnvironment]bool, len(available))
	for _, env := range available {
		avail[env] = true
	}
	var envs []domain.BillingEnvironment
	for _, env := range wanted {
		if avail[env] {
			envs = append(envs, env)
		}
	}
	if len(envs) == 0 {
		return nil, apperror.ErrNoLedgerCredentials()
	}
	return envs, nil
}

// reconcileState is the shared accumulator for concurrent per-environment
// scans. The global session cap spans all environments.
type reconcileState struct {
	mu      sync.Mutex
	result  ports.ReconcileResult
	scanned int
}

func (st *reconcileState) capLeft() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return globalSessionCap - st.scanned
}

// ReconcileOrders scans recent checkout sessions in every selected
// environment and pushes paid sessions through the shared ingest path.
// Environments scan concurrently; a failing environment degrades to a
// warning so the others still complete.
func (s *ReconciliationServiceImpl) ReconcileOrders(ctx context.Context, req ports.ReconcileRequest) (*ports.ReconcileResult, error) {
	envs, err := selectEnvironments(s.ledger, req.Mode)
	if err != nil {
		return nil, err
	}

	windowDays := req.WindowDays
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	if windowDays > 365 {
		return nil, apperror.Validation("window_days must be at most 365")
	}
	pageSize := req.MaxSessions
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	createdAfter := time.Now().UTC().AddDate(0, 0, -windowDays)

	st := &reconcileState{result: ports.ReconcileResult{
		Failures: []string{},
		Warnings: []string{},
	}}
	failedEnvs := 0

	g, gctx := errgroup.WithContext(ctx)
	for _, env := range envs {
		g.Go(func() error {
			if err := s.scanEnvironment(gctx, env, createdAfter, pageSize, req.DryRun, st); err != nil {
				st.mu.Lock()
				st.result.Warnings = append(st.result.Warnings, fmt.Sprintf("environment %s: %v", env, err))
				failedEnvs++
				st.mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperror.InternalError(err)
	}

	// Every environment unreachable with nothing scanned is a run failure,
	// not a partial result.
	if failedEnvs == len(envs) && st.scanned == 0 {
		return nil, apperror.ErrLedgerUnreachable(fmt.Errorf("%s", st.result.Warnings[0]))
	}

	s.log.Info().
		Int("scanned", st.result.Scanned).
		Int("paid_candidates", st.result.PaidCandidates).
		Int("synced", st.result.Synced).
		Int("orders_marked_paid", st.result.OrdersMarkedPaid).
		Bool("dry_run", req.DryRun).
		Msg("Order reconciliation complete")
	return &st.result, nil
}

// scanEnvironment pages through one environment's checkout sessions until the
// provider reports no more, the window is exhausted, or the global cap trips.
func (s *ReconciliationServiceImpl) scanEnvironment(ctx context.Context, env domain.BillingEnvironment, createdAfter time.Time, pageSize int, dryRun bool, st *reconcileState) error {
	cursor := ""
	for {
		left := st.capLeft()
		if left <= 0 {
			return nil
		}
		if pageSize > left {
			pageSize = left
		}

		page, err := s.ledger.ListCheckoutSessions(ctx, env, createdAfter, cursor, pageSize)
		if err != nil {
			return fmt.Errorf("list checkout sessions: %w", err)
		}

		for _, sess := range page.Sessions {
			s.processSession(ctx, env, sess, dryRun, st)
		}

		st.mu.Lock()
		st.scanned += len(page.Sessions)
		st.result.Scanned += len(page.Sessions)
		st.mu.Unlock()

		if !page.HasMore || page.NextCursor == "" {
			return nil
		}
		cursor = page.NextCursor
	}
}

func (s *ReconciliationServiceImpl) processSession(ctx context.Context, env domain.BillingEnvironment, sess ports.CheckoutSession, dryRun bool, st *reconcileState) {
	orderRef := sess.Metadata["order_id"]
	if orderRef == "" {
		st.mu.Lock()
		st.result.Skipped++
		st.mu.Unlock()
		return
	}

	st.mu.Lock()
	st.result.Eligible++
	st.mu.Unlock()

	if sess.PaymentStatus != "paid" {
		st.mu.Lock()
		st.result.Skipped++
		st.mu.Unlock()
		return
	}

	st.mu.Lock()
	st.result.PaidCandidates++
	st.mu.Unlock()

	if dryRun {
		return
	}

	created, orderMarked, err := s.ingestor.IngestSession(ctx, env, sess)
	if err != nil {
		st.mu.Lock()
		st.result.Failures = append(st.result.Failures, fmt.Sprintf("session %s: %v", sess.ID, err))
		st.mu.Unlock()
		return
	}

	st.mu.Lock()
	if created {
		st.result.Synced++
	}
	if orderMarked {
		st.result.OrdersMarkedPaid++
	}
	st.mu.Unlock()
}
