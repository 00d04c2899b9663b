package ports

import (
	"context"
	"time"

	"listing-automation-service/internal/core/domain"
)

// LedgerInvoice is one settled invoice observed in the external ledger.
// Only the fields this service consumes are modeled.
type LedgerInvoice struct {
	ID          string
	SessionID   string
	AmountMinor int64
	Currency    string
	PaidAt      time.Time
	Environment domain.BillingEnvironment
}

// InvoicePage is one page of a paginated invoice scan.
type InvoicePage struct {
	Invoices   []LedgerInvoice
	HasMore    bool
	NextCursor string
}

// CheckoutSession is one checkout session from the external ledger.
type CheckoutSession struct {
	ID            string
	PaymentStatus string // Provider's payment-status field; "paid" marks settlement
	AmountMinor   int64
	Currency      string
	Metadata      map[string]string
	CreatedAt     time.Time
}

// SessionPage is one page of a paginated checkout-session scan.
type SessionPage struct {
	Sessions   []CheckoutSession
	HasMore    bool
	NextCursor string
}

// LedgerClient reads the external payment ledger. The provider runs live and
// test as independent environments with independent credentials; every call
// targets exactly one environment and must complete within a bounded timeout.
type LedgerClient interface {
	// Environments lists the environments credentials are configured for.
	Environments() []domain.BillingEnvironment
	ListPaidInvoices(ctx context.Context, env domain.BillingEnvironment, cursor string, pageSize int) (*InvoicePage, error)
	ListCheckoutSessions(ctx context.Context, env domain.BillingEnvironment, createdAfter time.Time, cursor string, pageSize int) (*SessionPage, error)
}
