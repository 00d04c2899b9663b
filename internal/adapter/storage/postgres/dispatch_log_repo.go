package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"listing-automation-service/internal/core/domain"
)

// DispatchLogRepo implements ports.DispatchLogRepository.
type DispatchLogRepo struct {
	pool Pool
}

// NewDispatchLogRepo creates a new DispatchLogRepo.
func NewDispatchLogRepo(pool Pool) *DispatchLogRepo {
	return &DispatchLogRepo{pool: pool}
}

// Create persists one dispatch audit row. Headers must already be redacted
// by the caller.
func (r *DispatchLogRepo) Create(ctx context.Context, log *domain.DispatchLog) error {
	headersJSON, err := json.Marshal(log.RequestHeaders)
	if err != nil {
		return fmt.Errorf("marshal dispatch headers: %w", err)
	}

	query := `INSERT INTO dispatch_logs (id, config_id, idempotency_key, request_url, method,
			request_headers, request_body, response_status, response_body, duration_ms,
			outcome, principal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.pool.Exec(ctx, query,
		log.ID, log.ConfigID, log.IdempotencyKey, log.RequestURL, log.Method,
		headersJSON, log.RequestBody, log.ResponseStatus, log.ResponseBody,
		log.DurationMS, log.Outcome, log.Principal, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert dispatch log: %w", err)
	}
	return nil
}

// ListRecent returns the latest dispatch rows, newest first.
func (r *DispatchLogRepo) ListRecent(ctx context.Context, limit int) ([]domain.DispatchLog, error) {
	query := `SELECT id, config_id, idempotency_key, request_url, method,
			request_headers, request_body, response_status, response_body, duration_ms,
			outcome, principal, created_at
		FROM dispatch_logs
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list dispatch logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.DispatchLog
	for rows.Next() {
		var l domain.DispatchLog
		var headersJSON []byte
		err := rows.Scan(
			&l.ID, &l.ConfigID, &l.IdempotencyKey, &l.RequestURL, &l.Method,
			&headersJSON, &l.RequestBody, &l.ResponseStatus, &l.ResponseBody,
			&l.DurationMS, &l.Outcome, &l.Principal, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan dispatch log: %w", err)
		}
		if len(headersJSON) > 0 {
			if err := json.Unmarshal(headersJSON, &l.RequestHeaders); err != nil {
				return nil, fmt.Errorf("unmarshal dispatch headers: %w", err)
			}
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispatch log rows: %w", err)
	}
	return logs, nil
}
