package handler

import (
	"time"

	"listing-automation-service/internal/adapter/http/dto"
	"listing-automation-service/internal/adapter/http/middleware"
	"listing-automation-service/internal/core/domain"
	"listing-automation-service/internal/core/ports"
	"listing-automation-service/pkg/apperror"
	"listing-automation-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultRevenueMonths = 12

// AdminHandler handles webhook config management, dispatch triggers,
// reconciliation and revenue reporting.
type AdminHandler struct {
	dispatchSvc  ports.DispatchService
	reconcileSvc ports.ReconciliationService
	revenueSvc   ports.RevenueService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(dispatchSvc ports.DispatchService, reconcileSvc ports.ReconciliationService, revenueSvc ports.RevenueService) *AdminHandler {
	return &AdminHandler{dispatchSvc: dispatchSvc, reconcileSvc: reconcileSvc, revenueSvc: revenueSvc}
}

// CreateWebhook handles POST /api/v1/admin/webhooks.
func (h *AdminHandler) CreateWebhook(c *gin.Context) {
	var req dto.WebhookConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	cfg, err := toDomainConfig(&req)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	created, err := h.dispatchSvc.CreateConfig(c.Request.Context(), cfg)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toConfigResponse(created))
}

// UpdateWebhook handles PUT /api/v1/admin/webhooks/:id.
func (h *AdminHandler) UpdateWebhook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("config id must be a UUID"))
		return
	}

	var req dto.WebhookConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	cfg, err := toDomainConfig(&req)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	cfg.ID = id

	updated, err := h.dispatchSvc.UpdateConfig(c.Request.Context(), cfg)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toConfigResponse(updated))
}

// DeleteWebhook handles DELETE /api/v1/admin/webhooks/:id.
func (h *AdminHandler) DeleteWebhook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("config id must be a UUID"))
		return
	}

	if err := h.dispatchSvc.DeleteConfig(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": true})
}

// ListWebhooks handles GET /api/v1/admin/webhooks.
func (h *AdminHandler) ListWebhooks(c *gin.Context) {
	configs, err := h.dispatchSvc.ListConfigs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.WebhookConfigResponse, 0, len(configs))
	for i := range configs {
		items = append(items, toConfigResponse(&configs[i]))
	}
	response.OK(c, gin.H{"items": items, "total": len(items)})
}

// RunDispatch handles POST /api/v1/admin/dispatch/run.
func (h *AdminHandler) RunDispatch(c *gin.Context) {
	summary, err := h.dispatchSvc.RunTick(c.Request.Context(), principal(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}

// SyncDispatch handles POST /api/v1/admin/dispatch/sync.
func (h *AdminHandler) SyncDispatch(c *gin.Context) {
	result, err := h.dispatchSvc.SyncLifecycle(c.Request.Context(), principal(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// DispatchLogs handles GET /api/v1/admin/dispatch/logs.
func (h *AdminHandler) DispatchLogs(c *gin.Context) {
	var q dto.DispatchLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	logs, err := h.dispatchSvc.RecentLogs(c.Request.Context(), q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.DispatchLogResponse, 0, len(logs))
	for i := range logs {
		items = append(items, toDispatchLogResponse(&logs[i]))
	}
	response.OK(c, gin.H{"items": items, "total": len(items)})
}

// Reconcile handles POST /api/v1/admin/reconcile.
func (h *AdminHandler) Reconcile(c *gin.Context) {
	var req dto.ReconcileRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}
	if req.Mode == "" {
		req.Mode = "all"
	}

	result, err := h.reconcileSvc.ReconcileOrders(c.Request.Context(), ports.ReconcileRequest{
		Mode:        req.Mode,
		WindowDays:  req.WindowDays,
		MaxSessions: req.MaxSessions,
		DryRun:      req.DryRun,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Revenue handles GET /api/v1/admin/revenue.
func (h *AdminHandler) Revenue(c *gin.Context) {
	var q dto.RevenueQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if q.Months == 0 {
		q.Months = defaultRevenueMonths
	}
	if q.Mode == "" {
		q.Mode = "all"
	}

	report, err := h.revenueSvc.MonthlyRevenue(c.Request.Context(), ports.RevenueRequest{
		Months:   q.Months,
		Mode:     q.Mode,
		Currency: q.Currency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// principal names the actor recorded on manually triggered runs.
func principal(c *gin.Context) string {
	if v, ok := c.Get(middleware.CtxUserID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id.String()
		}
	}
	return "admin"
}

func toDomainConfig(req *dto.WebhookConfigRequest) (*domain.WebhookConfig, error) {
	cfg := &domain.WebhookConfig{
		Name:        req.Name,
		TargetURL:   req.TargetURL,
		Method:      req.Method,
		Headers:     req.Headers,
		Body:        req.Body,
		Enabled:     req.Enabled,
		Scope:       domain.ConfigScope(req.Scope),
		Description: req.Description,
	}
	if req.ProductTypeID != nil {
		id, err := uuid.Parse(*req.ProductTypeID)
		if err != nil {
			return nil, err
		}
		cfg.ProductTypeID = &id
	}
	return cfg, nil
}

func toConfigResponse(cfg *domain.WebhookConfig) dto.WebhookConfigResponse {
	resp := dto.WebhookConfigResponse{
		ID:          cfg.ID.String(),
		Name:        cfg.Name,
		TargetURL:   cfg.TargetURL,
		Method:      cfg.Method,
		Headers:     cfg.Headers,
		Body:        cfg.Body,
		Enabled:     cfg.Enabled,
		Scope:       string(cfg.Scope),
		Description: cfg.Description,
		CreatedAt:   cfg.CreatedAt.UTC().Format(time.RFC3339),
	}
	if cfg.ProductTypeID != nil {
		id := cfg.ProductTypeID.String()
		resp.ProductTypeID = &id
	}
	if cfg.UpdatedAt != nil {
		updated := cfg.UpdatedAt.UTC().Format(time.RFC3339)
		resp.UpdatedAt = &updated
	}
	return resp
}

func toDispatchLogResponse(entry *domain.DispatchLog) dto.DispatchLogResponse {
	return dto.DispatchLogResponse{
		ID:             entry.ID.String(),
		ConfigID:       entry.ConfigID.String(),
		IdempotencyKey: entry.IdempotencyKey,
		RequestURL:     entry.RequestURL,
		Method:         entry.Method,
		RequestHeaders: entry.RequestHeaders,
		ResponseStatus: entry.ResponseStatus,
		ResponseBody:   entry.ResponseBody,
		DurationMS:     entry.DurationMS,
		Outcome:        string(entry.Outcome),
		Principal:      entry.Principal,
		CreatedAt:      entry.CreatedAt.UTC().Format(time.RFC3339),
	}
}
