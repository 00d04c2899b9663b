package handler

import (
	"net/http"
	"time"

	"listing-automation-service/internal/adapter/http/dto"
	"listing-automation-service/internal/core/domain"
	"listing-automation-service/internal/core/ports"
	"listing-automation-service/pkg/apperror"
	"listing-automation-service/pkg/response"

	"github.com/gin-gonic/gin"
)

const eventCheckoutCompleted = "checkout.session.completed"

// LedgerHandler ingests push events from the external ledger. It shares the
// PaymentIngestor write path with reconciliation so a session observed both
// ways is recorded once.
type LedgerHandler struct {
	ingestor ports.PaymentIngestor
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ingestor ports.PaymentIngestor) *LedgerHandler {
	return &LedgerHandler{ingestor: ingestor}
}

// HandleEvent handles POST /api/v1/ledger/events. Unknown event types are
// acknowledged with 200 so the ledger does not retry them.
func (h *LedgerHandler) HandleEvent(c *gin.Context) {
	var req dto.LedgerEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if req.Type != eventCheckoutCompleted {
		response.OK(c, dto.LedgerEventResponse{Received: true})
		return
	}

	env := domain.EnvTest
	if req.Livemode {
		env = domain.EnvLive
	}

	obj := req.Data.Object
	created, marked, err := h.ingestor.IngestSession(c.Request.Context(), env, ports.CheckoutSession{
		ID:            obj.ID,
		PaymentStatus: obj.PaymentStatus,
		AmountMinor:   obj.AmountTotal,
		Currency:      obj.Currency,
		Metadata:      obj.Metadata,
		CreatedAt:     time.Unix(obj.Created, 0).UTC(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LedgerEventResponse{
		Received:        true,
		PaymentRecorded: created,
		OrderMarkedPaid: marked,
	})
}

// HealthCheck handles GET /health, pinging every registered dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
