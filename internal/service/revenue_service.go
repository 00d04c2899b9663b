package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"listing-automation-service/internal/core/domain"
	"listing-automation-service/internal/core/ports"
	"listing-automation-service/pkg/apperror"

	"github.com/rs/zerolog"
)

const maxRevenueMonths = 24

// RevenueServiceImpl implements ports.RevenueService by merging the local
// payment mirror with a fresh external invoice scan.
type RevenueServiceImpl struct {
	payRepo ports.PaymentRepository
	ledger  ports.LedgerClient
	log     zerolog.Logger
}

// NewRevenueService creates a new RevenueServiceImpl.
func NewRevenueService(
	payRepo ports.PaymentRepository,
	ledger ports.LedgerClient,
	log zerolog.Logger,
) *RevenueServiceImpl {
	return &RevenueServiceImpl{
		payRepo: payRepo,
		ledger:  ledger,
		log:     log,
	}
}

// monthKey formats a timestamp as its UTC calendar month.
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// MonthlyRevenue builds the merged month-by-month revenue series. Local
// records take precedence: an external invoice whose id is already tagged on
// a local record is discarded rather than double counted. Ledger outages
// degrade to warnings and a local-only series.
func (s *RevenueServiceImpl) MonthlyRevenue(ctx context.Context, req ports.RevenueRequest) (*ports.RevenueReport, error) {
	if req.Months < 1 || req.Months > maxRevenueMonths {
		return nil, apperror.Validation(fmt.Sprintf("months must be between 1 and %d", maxRevenueMonths))
	}

	envs, err := selectEnvironments(s.ledger, req.Mode)
	if err != nil {
		return nil, err
	}
	envSet := make(map[domain.BillingEnvironment]bool, len(envs))
	for _, env := range envs {
		envSet[env] = true
	}

	now := time.Now().UTC()
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(req.Months - 1), 0)

	buckets := make(map[string]*ports.MonthBucket)
	bucketFor := func(t time.Time) *ports.MonthBucket {
		key := monthKey(t)
		b, ok := buckets[key]
		if !ok {
			b = &ports.MonthBucket{MonthKey: key}
			buckets[key] = b
		}
		return b
	}

	report := &ports.RevenueReport{Warnings: []string{}}

	// Local mirror first; its invoice tags establish precedence.
	seen := make(map[string]bool)
	local, err := s.payRepo.ListSettledSince(ctx, windowStart, req.Currency)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list local payments: %w", err))
	}
	for i := range local {
		rec := &local[i]
		if !envSet[rec.Environment] {
			continue
		}
		if rec.ExternalInvoiceID != nil {
			seen[*rec.ExternalInvoiceID] = true
		}
		b := bucketFor(rec.SettledAt)
		b.RevenueMinor += rec.AmountMinor
		b.TransactionCount++
	}

	// External scan fills in what the mirror missed.
	for _, env := range envs {
		if err := s.scanInvoices(ctx, env, windowStart, req.Currency, seen, bucketFor); err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("environment %s: %v", env, err))
		}
	}

	// Contiguous series: every month in the window appears, zero or not.
	for m := 0; m < req.Months; m++ {
		bucketFor(windowStart.AddDate(0, m, 0))
	}
	for _, b := range buckets {
		report.Series = append(report.Series, *b)
		report.TotalRevenueMinor += b.RevenueMinor
		report.TotalTransactions += b.TransactionCount
	}
	sort.Slice(report.Series, func(i, j int) bool {
		return report.Series[i].MonthKey < report.Series[j].MonthKey
	})

	report.MoMPercent = monthOverMonth(report.Series)

	s.log.Info().
		Int("months", req.Months).
		Int64("total_revenue_minor", report.TotalRevenueMinor).
		Int("total_transactions", report.TotalTransactions).
		Msg("Monthly revenue aggregated")
	return report, nil
}

// scanInvoices pages through one environment's paid invoices, folding unseen
// ones into the buckets.
func (s *RevenueServiceImpl) scanInvoices(ctx context.Context, env domain.BillingEnvironment, windowStart time.Time, currency string, seen map[string]bool, bucketFor func(time.Time) *ports.MonthBucket) error {
	cursor := ""
	fetched := 0
	for fetched < globalSessionCap {
		pageSize := defaultPageSize
		if left := globalSessionCap - fetched; pageSize > left {
			pageSize = left
		}

		page, err := s.ledger.ListPaidInvoices(ctx, env, cursor, pageSize)
		if err != nil {
			return fmt.Errorf("list paid invoices: %w", err)
		}
		fetched += len(page.Invoices)

		for _, inv := range page.Invoices {
			if seen[inv.ID] {
				continue
			}
			seen[inv.ID] = true
			if inv.PaidAt.Before(windowStart) {
				continue
			}
			if currency != "" && inv.Currency != currency {
				continue
			}
			b := bucketFor(inv.PaidAt)
			b.RevenueMinor += inv.AmountMinor
			b.TransactionCount++
		}

		if !page.HasMore || page.NextCursor == "" {
			return nil
		}
		cursor = page.NextCursor
	}
	return nil
}

// monthOverMonth computes the percent change between the final two buckets.
// Both zero means flat (0); growth from a zero month is pinned to 100.
func monthOverMonth(series []ports.MonthBucket) float64 {
	if len(series) < 2 {
		return 0
	}
	prev := series[len(series)-2].RevenueMinor
	cur := series[len(series)-1].RevenueMinor
	switch {
	case prev == 0 && cur == 0:
		return 0
	case prev == 0:
		return 100
	default:
		return (float64(cur) - float64(prev)) / float64(prev) * 100
	}
}
