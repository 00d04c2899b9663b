package domain

import (
	"time"

	"github.com/google/uuid"
)

// BillingEnvironment identifies which external ledger environment a record
// was observed in. The provider runs live and test as independent ledgers.
type BillingEnvironment string

const (
	EnvLive BillingEnvironment = "live"
	EnvTest BillingEnvironment = "test"
)

// PaymentStatus is the settlement state mirrored from the external ledger.
type PaymentStatus string

const (
	PaymentStatusSettled  PaymentStatus = "settled"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentRecord is the local mirror of one externally-settled payment.
// ExternalSessionID is unique: re-observing the same session updates the
// existing row, never duplicates it. Webhook ingestion and reconciliation
// both write through the same upsert keyed on it.
type PaymentRecord struct {
	ID                uuid.UUID          `json:"id"`
	ExternalSessionID string             `json:"external_session_id"`
	ExternalInvoiceID *string            `json:"external_invoice_id,omitempty"`
	UserID            *uuid.UUID         `json:"user_id,omitempty"`
	OrderID           *uuid.UUID         `json:"order_id,omitempty"`
	AmountMinor       int64              `json:"amount_minor"` // Integer minor currency units
	Currency          string             `json:"currency"`
	Status            PaymentStatus      `json:"status"`
	Environment       BillingEnvironment `json:"environment"`
	SettledAt         time.Time          `json:"settled_at"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// OrderStatus is the payment state of a local order. Orders only move
// forward: pending -> paid, never back.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)
