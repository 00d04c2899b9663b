// Package ledger implements the external payment-ledger client over the
// provider's HTTP API. Live and test are independent ledgers with
// independent credentials; the client only exposes environments it holds a
// key for.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"listing-automation-service/internal/core/domain"
	"listing-automation-service/internal/core/ports"

	"github.com/rs/zerolog"
)

// ErrNoCredentials is returned when neither environment key is configured.
var ErrNoCredentials = fmt.Errorf("no ledger credentials configured")

// Client implements ports.LedgerClient.
type Client struct {
	apiBase string
	keys    map[domain.BillingEnvironment]string
	envs    []domain.BillingEnvironment
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a ledger client from the configured credentials. At least
// one of liveKey/testKey must be set.
func NewClient(apiBase, liveKey, testKey string, callTimeout time.Duration, log zerolog.Logger) (*Client, error) {
	keys := make(map[domain.BillingEnvironment]string, 2)
	var envs []domain.BillingEnvironment
	if liveKey != "" {
		keys[domain.EnvLive] = liveKey
		envs = append(envs, domain.EnvLive)
	}
	if testKey != "" {
		keys[domain.EnvTest] = testKey
		envs = append(envs, domain.EnvTest)
	}
	if len(envs) == 0 {
		return nil, ErrNoCredentials
	}

	return &Client{
		apiBase: apiBase,
		keys:    keys,
		envs:    envs,
		http:    &http.Client{Timeout: callTimeout},
		log:     log,
	}, nil
}

// Environments lists the environments credentials are configured for.
func (c *Client) Environments() []domain.BillingEnvironment {
	out := make([]domain.BillingEnvironment, len(c.envs))
	copy(out, c.envs)
	return out
}

type invoiceItem struct {
	ID              string `json:"id"`
	CheckoutSession string `json:"checkout_session"`
	AmountPaid      int64  `json:"amount_paid"`
	Currency        string `json:"currency"`
	StatusTransit   struct {
		PaidAt int64 `json:"paid_at"`
	} `json:"status_transitions"`
}

type invoiceList struct {
	Data    []invoiceItem `json:"data"`
	HasMore bool          `json:"has_more"`
}

// ListPaidInvoices fetches one page of settled invoices for the environment.
func (c *Client) ListPaidInvoices(ctx context.Context, env domain.BillingEnvironment, cursor string, pageSize int) (*ports.InvoicePage, error) {
	q := url.Values{}
	q.Set("status", "paid")
	q.Set("limit", fmt.Sprintf("%d", pageSize))
	if cursor != "" {
		q.Set("starting_after", cursor)
	}

	var list invoiceList
	if err := c.get(ctx, env, "/v1/invoices", q, &list); err != nil {
		return nil, fmt.Errorf("list paid invoices: %w", err)
	}

	page := &ports.InvoicePage{HasMore: list.HasMore}
	for _, item := range list.Data {
		page.Invoices = append(page.Invoices, ports.LedgerInvoice{
			ID:          item.ID,
			SessionID:   item.CheckoutSession,
			AmountMinor: item.AmountPaid,
			Currency:    item.Currency,
			PaidAt:      time.Unix(item.StatusTransit.PaidAt, 0).UTC(),
			Environment: env,
		})
	}
	if len(list.Data) > 0 {
		page.NextCursor = list.Data[len(list.Data)-1].ID
	}
	return page, nil
}

type sessionItem struct {
	ID            string            `json:"id"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
	Created       int64             `json:"created"`
}

type sessionList struct {
	Data    []sessionItem `json:"data"`
	HasMore bool          `json:"has_more"`
}

// ListCheckoutSessions fetches one page of checkout sessions created after
// the given time.
func (c *Client) ListCheckoutSessions(ctx context.Context, env domain.BillingEnvironment, createdAfter time.Time, cursor string, pageSize int) (*ports.SessionPage, error) {
	q := url.Values{}
	q.Set("created[gte]", fmt.Sprintf("%d", createdAfter.Unix()))
	q.Set("limit", fmt.Sprintf("%d", pageSize))
	if cursor != "" {
		q.Set("starting_after", cursor)
	}

	var list sessionList
	if err := c.get(ctx, env, "/v1/checkout/sessions", q, &list); err != nil {
		return nil, fmt.Errorf("list checkout sessions: %w", err)
	}

	page := &ports.SessionPage{HasMore: list.HasMore}
	for _, item := range list.Data {
		page.Sessions = append(page.Sessions, ports.CheckoutSession{
			ID:            item.ID,
			PaymentStatus: item.PaymentStatus,
			AmountMinor:   item.AmountTotal,
			Currency:      item.Currency,
			Metadata:      item.Metadata,
			CreatedAt:     time.Unix(item.Created, 0).UTC(),
		})
	}
	if len(list.Data) > 0 {
		page.NextCursor = list.Data[len(list.Data)-1].ID
	}
	return page, nil
}

func (c *Client) get(ctx context.Context, env domain.BillingEnvironment, path string, q url.Values, out any) error {
	key, ok := c.keys[env]
	if !ok {
		return fmt.Errorf("no credentials for environment %s", env)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build ledger request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+key)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call ledger api: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("env", string(env)).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Ledger API call")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("ledger api status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode ledger response: %w", err)
	}
	return nil
}
