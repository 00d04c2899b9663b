package domain

import (
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// ConfigScope distinguishes production automation configs from cron smoke-test configs.
type ConfigScope string

const (
	ScopeAutomation ConfigScope = "automation"
	ScopeCronTest   ConfigScope = "cron_test"
)

// WebhookConfig is a named outbound endpoint read by the dispatch runner on
// every tick. description, scope and updated_at are optional columns in
// storage and may be absent on un-migrated deployments.
type WebhookConfig struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	TargetURL     string            `json:"target_url"`
	Method        string            `json:"method"` // GET or POST
	Headers       map[string]string `json:"headers,omitempty"`
	Body          *string           `json:"body,omitempty"`
	Enabled       bool              `json:"enabled"`
	Scope         ConfigScope       `json:"scope"`
	Description   *string           `json:"description,omitempty"`
	ProductTypeID *uuid.UUID        `json:"product_type_id,omitempty"` // Downstream product linkage
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     *time.Time        `json:"updated_at,omitempty"`
}

var (
	ErrBadTargetURL    = errors.New("target URL must be http or https")
	ErrBadMethod       = errors.New("method must be GET or POST")
	ErrEmptyHeaderKey  = errors.New("header keys must be non-empty")
	ErrLinkageRequired = errors.New("automation configs require a product linkage")
	ErrUnknownScope    = errors.New("scope must be automation or cron_test")

	// ErrSchemaMismatch marks a config write that failed even on the minimal
	// required column set; the deployed storage schema cannot hold configs.
	ErrSchemaMismatch = errors.New("storage schema missing required config columns")
)

// Validate checks the config invariants. It runs before any state change so
// malformed configs are rejected synchronously.
func (c *WebhookConfig) Validate() error {
	u, err := url.ParseRequestURI(c.TargetURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrBadTargetURL
	}
	if c.Method != "GET" && c.Method != "POST" {
		return ErrBadMethod
	}
	for k := range c.Headers {
		if k == "" {
			return ErrEmptyHeaderKey
		}
	}
	switch c.Scope {
	case ScopeAutomation:
		if c.ProductTypeID == nil {
			return ErrLinkageRequired
		}
	case ScopeCronTest:
	default:
		return ErrUnknownScope
	}
	return nil
}
