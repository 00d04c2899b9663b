package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"listing-automation-service/internal/adapter/http/dto"
	"listing-automation-service/internal/adapter/http/middleware"
	"listing-automation-service/internal/core/domain"
	"listing-automation-service/internal/core/ports"
	"listing-automation-service/internal/core/ports/mocks"
	"listing-automation-service/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authedContext(w *httptest.ResponseRecorder, userID uuid.UUID, workerID string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.CtxUserID, userID)
	c.Set(middleware.CtxWorkerID, workerID)
	return c
}

// --- Job Handler Tests ---

func TestClaim_ReturnsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobSvc := mocks.NewMockJobQueueService(ctrl)
	h := NewJobHandler(jobSvc)

	userID := uuid.New()
	job := &domain.ListingJob{
		ID:        uuid.New(),
		UserID:    userID,
		StoreID:   uuid.New(),
		Payload:   json.RawMessage(`{"sku":"A-1"}`),
		Status:    domain.JobStatusProcessing,
		CreatedAt: time.Now().UTC(),
	}
	jobSvc.EXPECT().ClaimNext(gomock.Any(), userID, "worker-9").Return(job, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID, "worker-9")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/jobs/claim", nil)

	h.Claim(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	got := data["job"].(map[string]interface{})
	assert.Equal(t, job.ID.String(), got["id"])
	assert.Equal(t, `{"sku":"A-1"}`, got["payload"])
}

func TestClaim_EmptyQueueReturnsNullJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobSvc := mocks.NewMockJobQueueService(ctrl)
	h := NewJobHandler(jobSvc)

	userID := uuid.New()
	jobSvc.EXPECT().ClaimNext(gomock.Any(), userID, "worker-9").Return(nil, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID, "worker-9")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/jobs/claim", nil)

	h.Claim(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Nil(t, data["job"])
}

func TestClaim_PreferredWorkerIDFromBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobSvc := mocks.NewMockJobQueueService(ctrl)
	h := NewJobHandler(jobSvc)

	userID := uuid.New()
	jobSvc.EXPECT().ClaimNext(gomock.Any(), userID, "override-1").Return(nil, nil)

	body, _ := json.Marshal(dto.ClaimJobRequest{PreferredWorkerID: "override-1"})
	w := httptest.NewRecorder()
	c := authedContext(w, userID, "worker-9")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/jobs/claim", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Claim(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReport_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobSvc := mocks.NewMockJobQueueService(ctrl)
	h := NewJobHandler(jobSvc)

	userID := uuid.New()
	jobID := uuid.New()
	jobSvc.EXPECT().Report(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req ports.JobReportRequest) (bool, error) {
			assert.Equal(t, jobID, req.JobID)
			assert.Equal(t, "worker-9", req.WorkerID)
			assert.Equal(t, domain.JobStatusCompleted, req.Status)
			return true, nil
		})

	body, _ := json.Marshal(dto.ReportJobRequest{
		JobID:  jobID.String(),
		Status: "completed",
	})
	w := httptest.NewRecorder()
	c := authedContext(w, userID, "worker-9")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/jobs/report", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Report(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["updated"])
}

func TestReport_InvalidStatusRejectedByBinding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewJobHandler(mocks.NewMockJobQueueService(ctrl))

	body := []byte(`{"job_id":"` + uuid.NewString() + `","status":"queued"}`)
	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), "worker-9")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/jobs/report", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Report(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReport_WrongWorkerConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobSvc := mocks.NewMockJobQueueService(ctrl)
	h := NewJobHandler(jobSvc)

	jobSvc.EXPECT().Report(gomock.Any(), gomock.Any()).Return(false, apperror.ErrReportRejected())

	body, _ := json.Marshal(dto.ReportJobRequest{JobID: uuid.NewString(), Status: "failed"})
	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), "worker-9")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/jobs/report", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Report(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Admin Handler Tests ---

func validConfigRequest() dto.WebhookConfigRequest {
	linkage := uuid.NewString()
	return dto.WebhookConfigRequest{
		Name:          "relist hook",
		TargetURL:     "https://hooks.example.com/relist",
		Method:        "POST",
		Enabled:       true,
		Scope:         "automation",
		ProductTypeID: &linkage,
	}
}

func TestCreateWebhook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatchSvc := mocks.NewMockDispatchService(ctrl)
	h := NewAdminHandler(dispatchSvc, mocks.NewMockReconciliationService(ctrl), mocks.NewMockRevenueService(ctrl))

	req := validConfigRequest()
	created := domain.WebhookConfig{
		ID:        uuid.New(),
		Name:      req.Name,
		TargetURL: req.TargetURL,
		Method:    req.Method,
		Enabled:   true,
		Scope:     domain.ScopeAutomation,
		CreatedAt: time.Now().UTC(),
	}
	dispatchSvc.EXPECT().CreateConfig(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, cfg *domain.WebhookConfig) (*domain.WebhookConfig, error) {
			assert.Equal(t, "relist hook", cfg.Name)
			require.NotNil(t, cfg.ProductTypeID)
			return &created, nil
		})

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), "admin-1")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/webhooks", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateWebhook(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, created.ID.String(), data["id"])
}

func TestCreateWebhook_BadURLRejectedByBinding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAdminHandler(mocks.NewMockDispatchService(ctrl), mocks.NewMockReconciliationService(ctrl), mocks.NewMockRevenueService(ctrl))

	req := validConfigRequest()
	req.TargetURL = "ftp://example.com/x"
	body, _ := json.Marshal(req)

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), "admin-1")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/webhooks", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateWebhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateWebhook_BadIDParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAdminHandler(mocks.NewMockDispatchService(ctrl), mocks.NewMockReconciliationService(ctrl), mocks.NewMockRevenueService(ctrl))

	body, _ := json.Marshal(validConfigRequest())
	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), "admin-1")
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	c.Request = httptest.NewRequest(http.MethodPut, "/api/v1/admin/webhooks/not-a-uuid", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.UpdateWebhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunDispatch_ReturnsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatchSvc := mocks.NewMockDispatchService(ctrl)
	h := NewAdminHandler(dispatchSvc, mocks.NewMockReconciliationService(ctrl), mocks.NewMockRevenueService(ctrl))

	userID := uuid.New()
	dispatchSvc.EXPECT().RunTick(gomock.Any(), userID.String()).
		Return(&ports.DispatchSummary{Configs: 3, Delivered: 2, Failed: 1}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID, "admin-1")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/dispatch/run", nil)

	h.RunDispatch(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["delivered"])
}

func TestReconcile_DefaultsModeToAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconcileSvc := mocks.NewMockReconciliationService(ctrl)
	h := NewAdminHandler(mocks.NewMockDispatchService(ctrl), reconcileSvc, mocks.NewMockRevenueService(ctrl))

	reconcileSvc.EXPECT().ReconcileOrders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req ports.ReconcileRequest) (*ports.ReconcileResult, error) {
			assert.Equal(t, "all", req.Mode)
			return &ports.ReconcileResult{Scanned: 10, Synced: 4}, nil
		})

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), "admin-1")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/reconcile", nil)

	h.Reconcile(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReconcile_NoCredentialsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconcileSvc := mocks.NewMockReconciliationService(ctrl)
	h := NewAdminHandler(mocks.NewMockDispatchService(ctrl), reconcileSvc, mocks.NewMockRevenueService(ctrl))

	reconcileSvc.EXPECT().ReconcileOrders(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrNoLedgerCredentials())

	body, _ := json.Marshal(dto.ReconcileRequest{Mode: "live"})
	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), "admin-1")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/reconcile", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Reconcile(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYNC_001")
}

func TestRevenue_DefaultsApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	revenueSvc := mocks.NewMockRevenueService(ctrl)
	h := NewAdminHandler(mocks.NewMockDispatchService(ctrl), mocks.NewMockReconciliationService(ctrl), revenueSvc)

	revenueSvc.EXPECT().MonthlyRevenue(gomock.Any(), ports.RevenueRequest{Months: 12, Mode: "all"}).
		Return(&ports.RevenueReport{TotalRevenueMinor: 5000}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), "admin-1")
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/admin/revenue", nil)

	h.Revenue(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRevenue_BadMonthsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAdminHandler(mocks.NewMockDispatchService(ctrl), mocks.NewMockReconciliationService(ctrl), mocks.NewMockRevenueService(ctrl))

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), "admin-1")
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/admin/revenue?months=99", nil)

	h.Revenue(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDispatchLogs_ReturnsItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatchSvc := mocks.NewMockDispatchService(ctrl)
	h := NewAdminHandler(dispatchSvc, mocks.NewMockReconciliationService(ctrl), mocks.NewMockRevenueService(ctrl))

	status := 200
	dispatchSvc.EXPECT().RecentLogs(gomock.Any(), 25).Return([]domain.DispatchLog{
		{
			ID:             uuid.New(),
			ConfigID:       uuid.New(),
			IdempotencyKey: "manual:abc:123",
			RequestURL:     "https://hooks.example.com/x",
			Method:         "POST",
			ResponseStatus: &status,
			Outcome:        domain.OutcomeDelivered,
			Principal:      "tick",
			CreatedAt:      time.Now().UTC(),
		},
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), "admin-1")
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/admin/dispatch/logs?limit=25", nil)

	h.DispatchLogs(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
}

// --- Ledger Handler Tests ---

func ledgerEventBody(t *testing.T, eventType string, livemode bool) []byte {
	t.Helper()
	body, err := json.Marshal(dto.LedgerEventRequest{
		ID:       "evt_1",
		Type:     eventType,
		Livemode: livemode,
		Data: dto.LedgerEventData{
			Object: dto.LedgerSessionObject{
				ID:            "cs_evt",
				PaymentStatus: "paid",
				AmountTotal:   2500,
				Currency:      "usd",
				Metadata:      map[string]string{"order_id": uuid.NewString()},
				Created:       time.Now().Unix(),
			},
		},
	})
	require.NoError(t, err)
	return body
}

func TestHandleEvent_CheckoutCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ingestor := mocks.NewMockPaymentIngestor(ctrl)
	h := NewLedgerHandler(ingestor)

	ingestor.EXPECT().IngestSession(gomock.Any(), domain.EnvLive, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ domain.BillingEnvironment, sess ports.CheckoutSession) (bool, bool, error) {
			assert.Equal(t, "cs_evt", sess.ID)
			assert.Equal(t, int64(2500), sess.AmountMinor)
			return true, true, nil
		})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/ledger/events",
		bytes.NewReader(ledgerEventBody(t, "checkout.session.completed", true)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.HandleEvent(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["payment_recorded"])
	assert.Equal(t, true, data["order_marked_paid"])
}

func TestHandleEvent_UnknownTypeAcknowledged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No IngestSession expectation: the event must be dropped, not processed.
	h := NewLedgerHandler(mocks.NewMockPaymentIngestor(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/ledger/events",
		bytes.NewReader(ledgerEventBody(t, "invoice.finalized", false)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.HandleEvent(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["received"])
	assert.Equal(t, false, data["payment_recorded"])
}

func TestHandleEvent_TestmodeRoutesToTestEnv(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ingestor := mocks.NewMockPaymentIngestor(ctrl)
	h := NewLedgerHandler(ingestor)

	ingestor.EXPECT().IngestSession(gomock.Any(), domain.EnvTest, gomock.Any()).Return(true, false, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/ledger/events",
		bytes.NewReader(ledgerEventBody(t, "checkout.session.completed", false)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.HandleEvent(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Health Check Tests ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(_ context.Context) error { return s.err }
func (s stubChecker) Name() string                 { return s.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis"})(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestHealthCheck_DependencyDown(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis", err: errors.New("connection refused")})(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
}

// --- Router Tests ---

func TestSetupRouter_UnauthenticatedJobClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := SetupRouter(RouterDeps{
		JobSvc:       mocks.NewMockJobQueueService(ctrl),
		DispatchSvc:  mocks.NewMockDispatchService(ctrl),
		ReconcileSvc: mocks.NewMockReconciliationService(ctrl),
		RevenueSvc:   mocks.NewMockRevenueService(ctrl),
		Ingestor:     mocks.NewMockPaymentIngestor(ctrl),
		TokenSvc:     mocks.NewMockTokenService(ctrl),
		Logger:       zerolog.Nop(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/claim", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetupRouter_AuthenticatedFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobSvc := mocks.NewMockJobQueueService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	userID := uuid.New()
	tokenSvc.EXPECT().Validate("worker-token").
		Return(&ports.TokenClaims{UserID: userID, WorkerID: "worker-1"}, nil)
	jobSvc.EXPECT().ClaimNext(gomock.Any(), userID, "worker-1").Return(nil, nil)

	r := SetupRouter(RouterDeps{
		JobSvc:       jobSvc,
		DispatchSvc:  mocks.NewMockDispatchService(ctrl),
		ReconcileSvc: mocks.NewMockReconciliationService(ctrl),
		RevenueSvc:   mocks.NewMockRevenueService(ctrl),
		Ingestor:     mocks.NewMockPaymentIngestor(ctrl),
		TokenSvc:     tokenSvc,
		Logger:       zerolog.Nop(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/claim", nil)
	req.Header.Set("Authorization", "Bearer worker-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRouter_LedgerEventsArePublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ingestor := mocks.NewMockPaymentIngestor(ctrl)
	ingestor.EXPECT().IngestSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, false, nil)

	r := SetupRouter(RouterDeps{
		JobSvc:       mocks.NewMockJobQueueService(ctrl),
		DispatchSvc:  mocks.NewMockDispatchService(ctrl),
		ReconcileSvc: mocks.NewMockReconciliationService(ctrl),
		RevenueSvc:   mocks.NewMockRevenueService(ctrl),
		Ingestor:     ingestor,
		TokenSvc:     mocks.NewMockTokenService(ctrl),
		Logger:       zerolog.Nop(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/events",
		bytes.NewReader(ledgerEventBody(t, "checkout.session.completed", true)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
