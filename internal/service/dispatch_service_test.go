package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"listing-automation-service/internal/core/domain"
	"listing-automation-service/internal/core/ports/mocks"
	"listing-automation-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatchTestDeps struct {
	svc     *DispatchServiceImpl
	cfgRepo *mocks.MockWebhookConfigRepository
	logRepo *mocks.MockDispatchLogRepository
	dedup   *mocks.MockDedupStore
	ctrl    *gomock.Controller
}

func setupDispatchService(t *testing.T, cronAPIBase string) *dispatchTestDeps {
	ctrl := gomock.NewController(t)
	d := &dispatchTestDeps{
		cfgRepo: mocks.NewMockWebhookConfigRepository(ctrl),
		logRepo: mocks.NewMockDispatchLogRepository(ctrl),
		dedup:   mocks.NewMockDedupStore(ctrl),
		ctrl:    ctrl,
	}
	d.svc = NewDispatchService(d.cfgRepo, d.logRepo, d.dedup,
		5*time.Second, time.Minute, cronAPIBase, zerolog.Nop())
	return d
}

func enabledConfig(targetURL string) domain.WebhookConfig {
	linkage := uuid.New()
	return domain.WebhookConfig{
		ID:            uuid.New(),
		Name:          "relist hook",
		TargetURL:     targetURL,
		Method:        "POST",
		Headers:       map[string]string{"Authorization": "Bearer secret"},
		Body:          strPtr(`{"event":"relist"}`),
		Enabled:       true,
		Scope:         domain.ScopeAutomation,
		ProductTypeID: &linkage,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestDispatchService_RunTick_Delivered(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := setupDispatchService(t, "")
	defer d.ctrl.Finish()
	ctx := context.Background()
	cfg := enabledConfig(srv.URL)

	d.cfgRepo.EXPECT().ListEnabled(ctx).Return([]domain.WebhookConfig{cfg}, nil)
	d.dedup.EXPECT().CheckAndSet(ctx, gomock.Any(), time.Minute).Return(true, nil)
	d.logRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.DispatchLog) error {
			assert.Equal(t, cfg.ID, entry.ConfigID)
			assert.Equal(t, domain.OutcomeDelivered, entry.Outcome)
			assert.Equal(t, "[REDACTED]", entry.RequestHeaders["Authorization"])
			assert.Equal(t, "tick", entry.Principal)
			return nil
		})

	summary, err := d.svc.RunTick(ctx, "tick")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Configs)
	assert.Equal(t, 1, summary.Delivered)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDispatchService_RunTick_DuplicateSkipped(t *testing.T) {
	d := setupDispatchService(t, "")
	defer d.ctrl.Finish()
	ctx := context.Background()
	cfg := enabledConfig("https://hooks.example.com/x")

	d.cfgRepo.EXPECT().ListEnabled(ctx).Return([]domain.WebhookConfig{cfg}, nil)
	d.dedup.EXPECT().CheckAndSet(ctx, gomock.Any(), time.Minute).Return(false, nil)
	d.logRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.DispatchLog) error {
			assert.Equal(t, domain.OutcomeSkippedDuplicate, entry.Outcome)
			return nil
		})

	summary, err := d.svc.RunTick(ctx, "tick")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SkippedDuplicate)
	assert.Equal(t, 0, summary.Delivered)
}

func TestDispatchService_RunTick_FailedEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := setupDispatchService(t, "")
	defer d.ctrl.Finish()
	ctx := context.Background()
	cfg := enabledConfig(srv.URL)

	d.cfgRepo.EXPECT().ListEnabled(ctx).Return([]domain.WebhookConfig{cfg}, nil)
	d.dedup.EXPECT().CheckAndSet(ctx, gomock.Any(), time.Minute).Return(true, nil)
	d.logRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.DispatchLog) error {
			assert.Equal(t, domain.OutcomeFailed, entry.Outcome)
			require.NotNil(t, entry.ResponseStatus)
			assert.Equal(t, http.StatusInternalServerError, *entry.ResponseStatus)
			return nil
		})

	summary, err := d.svc.RunTick(ctx, "tick")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, summary.Warnings, 1)
}

func TestDispatchService_RunTick_DedupOutageDispatchesAnyway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := setupDispatchService(t, "")
	defer d.ctrl.Finish()
	ctx := context.Background()
	cfg := enabledConfig(srv.URL)

	d.cfgRepo.EXPECT().ListEnabled(ctx).Return([]domain.WebhookConfig{cfg}, nil)
	d.dedup.EXPECT().CheckAndSet(ctx, gomock.Any(), time.Minute).Return(false, assert.AnError)
	d.logRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	summary, err := d.svc.RunTick(ctx, "tick")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Delivered)
}

func TestDispatchService_SyncLifecycle_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	d := setupDispatchService(t, srv.URL)
	defer d.ctrl.Finish()

	result, err := d.svc.SyncLifecycle(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSkippedRateLimit, result.Outcome)
	assert.Equal(t, http.StatusTooManyRequests, result.StatusCode)
}

func TestDispatchService_SyncLifecycle_Delivered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/schedules/sync", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := setupDispatchService(t, srv.URL)
	defer d.ctrl.Finish()

	result, err := d.svc.SyncLifecycle(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDelivered, result.Outcome)
}

func TestDispatchService_CreateConfig_Success(t *testing.T) {
	d := setupDispatchService(t, "")
	defer d.ctrl.Finish()
	ctx := context.Background()
	cfg := enabledConfig("https://hooks.example.com/new")

	d.cfgRepo.EXPECT().FindDuplicate(ctx, cfg.Scope, cfg.TargetURL, cfg.Method, uuid.Nil).Return(nil, nil)
	d.cfgRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	created, err := d.svc.CreateConfig(ctx, &cfg)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestDispatchService_CreateConfig_ValidationErrors(t *testing.T) {
	d := setupDispatchService(t, "")
	defer d.ctrl.Finish()

	tests := []struct {
		name     string
		mutate   func(*domain.WebhookConfig)
		wantCode string
	}{
		{"bad url scheme", func(c *domain.WebhookConfig) { c.TargetURL = "ftp://x" }, "CFG_001"},
		{"missing linkage", func(c *domain.WebhookConfig) { c.ProductTypeID = nil }, "CFG_002"},
		{"bad method", func(c *domain.WebhookConfig) { c.Method = "PATCH" }, "VAL_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := enabledConfig("https://hooks.example.com/x")
			tt.mutate(&cfg)

			_, err := d.svc.CreateConfig(context.Background(), &cfg)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestDispatchService_CreateConfig_Duplicate(t *testing.T) {
	d := setupDispatchService(t, "")
	defer d.ctrl.Finish()
	ctx := context.Background()
	cfg := enabledConfig("https://hooks.example.com/dup")
	existing := enabledConfig("https://hooks.example.com/dup")

	d.cfgRepo.EXPECT().FindDuplicate(ctx, cfg.Scope, cfg.TargetURL, cfg.Method, uuid.Nil).Return(&existing, nil)

	_, err := d.svc.CreateConfig(ctx, &cfg)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CFG_003", appErr.Code)
}

func TestDispatchService_CreateConfig_SchemaMismatchFatal(t *testing.T) {
	d := setupDispatchService(t, "")
	defer d.ctrl.Finish()
	ctx := context.Background()
	cfg := enabledConfig("https://hooks.example.com/x")

	d.cfgRepo.EXPECT().FindDuplicate(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	d.cfgRepo.EXPECT().Create(ctx, gomock.Any()).Return(domain.ErrSchemaMismatch)

	_, err := d.svc.CreateConfig(ctx, &cfg)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CFG_004", appErr.Code)
}

func TestDispatchService_UpdateConfig_NotFound(t *testing.T) {
	d := setupDispatchService(t, "")
	defer d.ctrl.Finish()
	ctx := context.Background()
	cfg := enabledConfig("https://hooks.example.com/x")

	d.cfgRepo.EXPECT().GetByID(ctx, cfg.ID).Return(nil, nil)

	_, err := d.svc.UpdateConfig(ctx, &cfg)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_002", appErr.Code)
}
