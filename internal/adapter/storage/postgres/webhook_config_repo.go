package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"listing-automation-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WebhookConfigRepo implements ports.WebhookConfigRepository with graceful
// degradation when optional columns (description, scope, updated_at) are
// missing from the deployed schema.
type WebhookConfigRepo struct {
	pool Pool
}

// NewWebhookConfigRepo creates a new WebhookConfigRepo.
func NewWebhookConfigRepo(pool Pool) *WebhookConfigRepo {
	return &WebhookConfigRepo{pool: pool}
}

// optionalValue resolves the insert value for one optional column.
func optionalValue(cfg *domain.WebhookConfig, col string) any {
	switch col {
	case "description":
		return cfg.Description
	case "scope":
		return string(cfg.Scope)
	case "updated_at":
		return cfg.UpdatedAt
	}
	return nil
}

// Create inserts the config, retrying with progressively smaller optional
// field sets when the schema reports a missing column. Only a failure on the
// minimal required set is returned to the caller.
func (r *WebhookConfigRepo) Create(ctx context.Context, cfg *domain.WebhookConfig) error {
	headersJSON, err := json.Marshal(cfg.Headers)
	if err != nil {
		return fmt.Errorf("marshal config headers: %w", err)
	}

	var lastErr error
	for _, optional := range configWriteAttempts {
		cols := []string{"id", "name", "target_url", "method", "headers", "body", "enabled", "product_type_id", "created_at"}
		args := []any{cfg.ID, cfg.Name, cfg.TargetURL, cfg.Method, headersJSON, cfg.Body, cfg.Enabled, cfg.ProductTypeID, cfg.CreatedAt}
		for _, col := range optional {
			cols = append(cols, col)
			args = append(args, optionalValue(cfg, col))
		}

		placeholders := make([]string, len(cols))
		for i := range cols {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}
		query := fmt.Sprintf("INSERT INTO webhook_configs (%s) VALUES (%s)",
			strings.Join(cols, ", "), strings.Join(placeholders, ", "))

		_, err := r.pool.Exec(ctx, query, args...)
		if err == nil {
			return nil
		}
		if !IsRecoverableSchemaErr(err) {
			return fmt.Errorf("insert webhook config: %w", err)
		}
		lastErr = err
	}
	return fmt.Errorf("insert webhook config with minimal columns: %w: %w", domain.ErrSchemaMismatch, lastErr)
}

// Update rewrites the config using the same optional-column fallback as Create.
func (r *WebhookConfigRepo) Update(ctx context.Context, cfg *domain.WebhookConfig) error {
	headersJSON, err := json.Marshal(cfg.Headers)
	if err != nil {
		return fmt.Errorf("marshal config headers: %w", err)
	}
	now := time.Now().UTC()
	cfg.UpdatedAt = &now

	var lastErr error
	for _, optional := range configWriteAttempts {
		assigns := []string{"name = $1", "target_url = $2", "method = $3", "headers = $4", "body = $5", "enabled = $6", "product_type_id = $7"}
		args := []any{cfg.Name, cfg.TargetURL, cfg.Method, headersJSON, cfg.Body, cfg.Enabled, cfg.ProductTypeID}
		for _, col := range optional {
			args = append(args, optionalValue(cfg, col))
			assigns = append(assigns, fmt.Sprintf("%s = $%d", col, len(args)))
		}
		args = append(args, cfg.ID)
		query := fmt.Sprintf("UPDATE webhook_configs SET %s WHERE id = $%d",
			strings.Join(assigns, ", "), len(args))

		tag, err := r.pool.Exec(ctx, query, args...)
		if err == nil {
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("webhook config not found: %s", cfg.ID)
			}
			return nil
		}
		if !IsRecoverableSchemaErr(err) {
			return fmt.Errorf("update webhook config: %w", err)
		}
		lastErr = err
	}
	return fmt.Errorf("update webhook config with minimal columns: %w: %w", domain.ErrSchemaMismatch, lastErr)
}

// Delete removes a config.
func (r *WebhookConfigRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM webhook_configs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete webhook config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("webhook config not found: %s", id)
	}
	return nil
}

// GetByID fetches a config, falling back to the minimal column set when
// optional columns are missing.
func (r *WebhookConfigRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookConfig, error) {
	full := `SELECT id, name, target_url, method, headers, body, enabled, product_type_id, created_at,
		description, scope, updated_at FROM webhook_configs WHERE id = $1`

	cfg, err := r.scanConfig(r.pool.QueryRow(ctx, full, id), true)
	if err != nil && IsRecoverableSchemaErr(err) {
		minimal := `SELECT id, name, target_url, method, headers, body, enabled, product_type_id, created_at
			FROM webhook_configs WHERE id = $1`
		return r.scanConfig(r.pool.QueryRow(ctx, minimal, id), false)
	}
	return cfg, err
}

// List returns all configs.
func (r *WebhookConfigRepo) List(ctx context.Context) ([]domain.WebhookConfig, error) {
	return r.list(ctx, "")
}

// ListEnabled returns all enabled configs. Dispatch ticks read this on every
// invocation; reads are snapshot-consistent and never observe partial writes.
func (r *WebhookConfigRepo) ListEnabled(ctx context.Context) ([]domain.WebhookConfig, error) {
	return r.list(ctx, "WHERE enabled")
}

// FindDuplicate looks for another enabled config with the same scope, target
// URL and method. Comparison happens in memory so a schema without the scope
// column still answers correctly (absent scope defaults to automation).
func (r *WebhookConfigRepo) FindDuplicate(ctx context.Context, scope domain.ConfigScope, targetURL, method string, excludeID uuid.UUID) (*domain.WebhookConfig, error) {
	configs, err := r.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}
	for i := range configs {
		c := &configs[i]
		if c.ID != excludeID && c.Scope == scope && c.TargetURL == targetURL && c.Method == method {
			return c, nil
		}
	}
	return nil, nil
}

func (r *WebhookConfigRepo) list(ctx context.Context, where string) ([]domain.WebhookConfig, error) {
	full := fmt.Sprintf(`SELECT id, name, target_url, method, headers, body, enabled, product_type_id, created_at,
		description, scope, updated_at FROM webhook_configs %s ORDER BY created_at`, where)

	configs, err := r.queryConfigs(ctx, full, true)
	if err != nil && IsRecoverableSchemaErr(err) {
		minimal := fmt.Sprintf(`SELECT id, name, target_url, method, headers, body, enabled, product_type_id, created_at
			FROM webhook_configs %s ORDER BY created_at`, where)
		return r.queryConfigs(ctx, minimal, false)
	}
	return configs, err
}

func (r *WebhookConfigRepo) queryConfigs(ctx context.Context, query string, withOptional bool) ([]domain.WebhookConfig, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list webhook configs: %w", err)
	}
	defer rows.Close()

	var configs []domain.WebhookConfig
	for rows.Next() {
		cfg, err := r.scanConfigRow(rows, withOptional)
		if err != nil {
			return nil, err
		}
		configs = append(configs, *cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate webhook config rows: %w", err)
	}
	return configs, nil
}

func (r *WebhookConfigRepo) scanConfig(row pgx.Row, withOptional bool) (*domain.WebhookConfig, error) {
	cfg, err := r.scanConfigRow(row, withOptional)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return cfg, nil
}

func (r *WebhookConfigRepo) scanConfigRow(row pgx.Row, withOptional bool) (*domain.WebhookConfig, error) {
	cfg := &domain.WebhookConfig{}
	var headersJSON []byte
	var scope *string

	dest := []any{&cfg.ID, &cfg.Name, &cfg.TargetURL, &cfg.Method, &headersJSON,
		&cfg.Body, &cfg.Enabled, &cfg.ProductTypeID, &cfg.CreatedAt}
	if withOptional {
		dest = append(dest, &cfg.Description, &scope, &cfg.UpdatedAt)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if len(headersJSON) > 0 {
		if err := json.Unmarshal(headersJSON, &cfg.Headers); err != nil {
			return nil, fmt.Errorf("unmarshal config headers: %w", err)
		}
	}

	// Rows written before the scope migration are automation configs.
	cfg.Scope = domain.ScopeAutomation
	if scope != nil && *scope != "" {
		cfg.Scope = domain.ConfigScope(*scope)
	}
	return cfg, nil
}
