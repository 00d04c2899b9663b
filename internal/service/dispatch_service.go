package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"listing-automation-service/internal/core/domain"
	"listing-automation-service/internal/core/ports"
	"listing-automation-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// responseBodyLimit caps how much of a webhook response is persisted in the
// audit log.
const responseBodyLimit = 4096

// DispatchServiceImpl implements ports.DispatchService.
type DispatchServiceImpl struct {
	cfgRepo     ports.WebhookConfigRepository
	logRepo     ports.DispatchLogRepository
	dedup       ports.DedupStore
	httpClient  *http.Client
	cronAPIBase string
	dedupTTL    time.Duration
	log         zerolog.Logger
}

// NewDispatchService creates a new DispatchServiceImpl. callTimeout bounds
// every outbound webhook call.
func NewDispatchService(
	cfgRepo ports.WebhookConfigRepository,
	logRepo ports.DispatchLogRepository,
	dedup ports.DedupStore,
	callTimeout time.Duration,
	dedupTTL time.Duration,
	cronAPIBase string,
	log zerolog.Logger,
) *DispatchServiceImpl {
	return &DispatchServiceImpl{
		cfgRepo:     cfgRepo,
		logRepo:     logRepo,
		dedup:       dedup,
		httpClient:  &http.Client{Timeout: callTimeout},
		cronAPIBase: cronAPIBase,
		dedupTTL:    dedupTTL,
		log:         log,
	}
}

// RunTick dispatches every enabled config once. Each config derives a
// manual-switch idempotency key; the dedup store suppresses configs already
// dispatched in the current 60-second bucket, so overlapping triggers never
// double-deliver. Per-config failures accumulate as warnings and never abort
// the tick.
func (s *DispatchServiceImpl) RunTick(ctx context.Context, principal string) (*ports.DispatchSummary, error) {
	configs, err := s.cfgRepo.ListEnabled(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load dispatch configs: %w", err))
	}

	summary := &ports.DispatchSummary{Configs: len(configs)}
	now := time.Now().UTC()

	for i := range configs {
		cfg := &configs[i]
		key := domain.ManualSwitchKey(principal, cfg.ID.String(), now)

		fresh, err := s.dedup.CheckAndSet(ctx, key, s.dedupTTL)
		if err != nil {
			// A broken dedup store must not silence dispatches; deliver
			// and rely on the key grammar downstream.
			s.log.Warn().Err(err).Str("key", key).Msg("Dedup check failed, dispatching anyway")
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("dedup check for %s: %v", cfg.Name, err))
			fresh = true
		}
		if !fresh {
			summary.SkippedDuplicate++
			s.recordLog(ctx, cfg, key, principal, nil, nil, 0, domain.OutcomeSkippedDuplicate)
			continue
		}

		status, body, dur, callErr := s.deliver(ctx, cfg)
		if callErr != nil {
			summary.Failed++
			msg := callErr.Error()
			s.recordLog(ctx, cfg, key, principal, nil, &msg, dur, domain.OutcomeFailed)
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("dispatch %s: %v", cfg.Name, callErr))
			continue
		}

		outcome := domain.OutcomeDelivered
		if status < 200 || status > 299 {
			outcome = domain.OutcomeFailed
			summary.Failed++
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("dispatch %s: status %d", cfg.Name, status))
		} else {
			summary.Delivered++
		}
		s.recordLog(ctx, cfg, key, principal, &status, &body, dur, outcome)
	}

	s.log.Info().
		Str("principal", principal).
		Int("configs", summary.Configs).
		Int("delivered", summary.Delivered).
		Int("failed", summary.Failed).
		Int("skipped_duplicate", summary.SkippedDuplicate).
		Msg("Dispatch tick complete")
	return summary, nil
}

// deliver performs one outbound webhook call.
func (s *DispatchServiceImpl) deliver(ctx context.Context, cfg *domain.WebhookConfig) (int, string, int64, error) {
	var bodyReader io.Reader
	if cfg.Body != nil {
		bodyReader = strings.NewReader(*cfg.Body)
	}

	req, err := http.NewRequestWithContext(ctx, cfg.Method, cfg.TargetURL, bodyReader)
	if err != nil {
		return 0, "", 0, fmt.Errorf("build request: %w", err)
	}
	for k, v := range cfg.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	dur := time.Since(start).Milliseconds()
	if err != nil {
		return 0, "", dur, fmt.Errorf("call webhook: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyLimit))
	return resp.StatusCode, string(body), dur, nil
}

// recordLog writes the audit row for one dispatch attempt. Log-write failures
// degrade to a warning log line; the dispatch outcome stands.
func (s *DispatchServiceImpl) recordLog(ctx context.Context, cfg *domain.WebhookConfig, key, principal string, status *int, respBody *string, durMS int64, outcome domain.DispatchOutcome) {
	entry := &domain.DispatchLog{
		ID:             uuid.New(),
		ConfigID:       cfg.ID,
		IdempotencyKey: key,
		RequestURL:     cfg.TargetURL,
		Method:         cfg.Method,
		RequestHeaders: domain.RedactHeaders(cfg.Headers),
		RequestBody:    cfg.Body,
		ResponseStatus: status,
		ResponseBody:   respBody,
		DurationMS:     durMS,
		Outcome:        outcome,
		Principal:      principal,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("config_id", cfg.ID.String()).Msg("Dispatch log write failed")
	}
}

// SyncLifecycle pings the external cron provider so its schedule entries for
// this service exist and are enabled. A 429 is reported as rate-limited, not
// failed, so callers can back off instead of alerting.
func (s *DispatchServiceImpl) SyncLifecycle(ctx context.Context, principal string) (*ports.LifecycleSyncResult, error) {
	if s.cronAPIBase == "" {
		return nil, apperror.Validation("cron API base is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cronAPIBase+"/v1/schedules/sync", nil)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build sync request: %w", err))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &ports.LifecycleSyncResult{
			Outcome: domain.OutcomeFailed,
			Message: err.Error(),
		}, nil
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyLimit))

	result := &ports.LifecycleSyncResult{StatusCode: resp.StatusCode, Message: string(body)}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		result.Outcome = domain.OutcomeSkippedRateLimit
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		result.Outcome = domain.OutcomeDelivered
	default:
		result.Outcome = domain.OutcomeFailed
	}

	s.log.Info().
		Str("principal", principal).
		Str("outcome", string(result.Outcome)).
		Int("status", resp.StatusCode).
		Msg("Cron lifecycle sync")
	return result, nil
}

// CreateConfig validates and persists a new webhook config.
func (s *DispatchServiceImpl) CreateConfig(ctx context.Context, cfg *domain.WebhookConfig) (*domain.WebhookConfig, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	dup, err := s.cfgRepo.FindDuplicate(ctx, cfg.Scope, cfg.TargetURL, cfg.Method, uuid.Nil)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("duplicate check: %w", err))
	}
	if dup != nil {
		return nil, apperror.ErrDuplicateWebhookConfig()
	}

	cfg.ID = uuid.New()
	cfg.CreatedAt = time.Now().UTC()
	if err := s.cfgRepo.Create(ctx, cfg); err != nil {
		return nil, classifyConfigWriteErr(err)
	}

	s.log.Info().Str("config_id", cfg.ID.String()).Str("name", cfg.Name).Msg("Webhook config created")
	return cfg, nil
}

// UpdateConfig validates and rewrites an existing webhook config.
func (s *DispatchServiceImpl) UpdateConfig(ctx context.Context, cfg *domain.WebhookConfig) (*domain.WebhookConfig, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	existing, err := s.cfgRepo.GetByID(ctx, cfg.ID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load config: %w", err))
	}
	if existing == nil {
		return nil, apperror.ErrNotFound("webhook config")
	}

	dup, err := s.cfgRepo.FindDuplicate(ctx, cfg.Scope, cfg.TargetURL, cfg.Method, cfg.ID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("duplicate check: %w", err))
	}
	if dup != nil {
		return nil, apperror.ErrDuplicateWebhookConfig()
	}

	cfg.CreatedAt = existing.CreatedAt
	if err := s.cfgRepo.Update(ctx, cfg); err != nil {
		return nil, classifyConfigWriteErr(err)
	}

	s.log.Info().Str("config_id", cfg.ID.String()).Msg("Webhook config updated")
	return cfg, nil
}

// DeleteConfig removes a config.
func (s *DispatchServiceImpl) DeleteConfig(ctx context.Context, id uuid.UUID) error {
	if err := s.cfgRepo.Delete(ctx, id); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("delete config: %w", err))
	}
	s.log.Info().Str("config_id", id.String()).Msg("Webhook config deleted")
	return nil
}

// ListConfigs returns all configs.
func (s *DispatchServiceImpl) ListConfigs(ctx context.Context) ([]domain.WebhookConfig, error) {
	configs, err := s.cfgRepo.List(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list configs: %w", err))
	}
	return configs, nil
}

// RecentLogs returns the latest dispatch audit rows.
func (s *DispatchServiceImpl) RecentLogs(ctx context.Context, limit int) ([]domain.DispatchLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	logs, err := s.logRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list dispatch logs: %w", err))
	}
	return logs, nil
}

// validateConfig maps domain validation sentinels onto API errors.
func validateConfig(cfg *domain.WebhookConfig) error {
	err := cfg.Validate()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrBadTargetURL):
		return apperror.ErrInvalidTargetURL()
	case errors.Is(err, domain.ErrLinkageRequired):
		return apperror.ErrMissingProductLinkage()
	default:
		return apperror.Validation(err.Error())
	}
}

// classifyConfigWriteErr separates schema incompatibility from ordinary
// storage failure.
func classifyConfigWriteErr(err error) error {
	if errors.Is(err, domain.ErrSchemaMismatch) {
		return apperror.ErrSchemaIncompatible(err)
	}
	return apperror.ErrDatabaseError(err)
}
