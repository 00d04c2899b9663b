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

// JobHandler handles the worker claim/report protocol.
type JobHandler struct {
	jobSvc ports.JobQueueService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobSvc ports.JobQueueService) *JobHandler {
	return &JobHandler{jobSvc: jobSvc}
}

// Claim handles POST /api/v1/jobs/claim. An empty queue is not an error;
// the response carries job=null and the worker backs off.
func (h *JobHandler) Claim(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ClaimJobRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	}
	dto.SanitizeStruct(&req)

	preferred := req.PreferredWorkerID
	if preferred == "" {
		preferred = c.GetString(middleware.CtxWorkerID)
	}

	job, err := h.jobSvc.ClaimNext(c.Request.Context(), userID, preferred)
	if err != nil {
		response.Error(c, err)
		return
	}
	if job == nil {
		response.OK(c, gin.H{"job": nil})
		return
	}

	response.OK(c, gin.H{"job": toJobResponse(job)})
}

// Report handles POST /api/v1/jobs/report.
func (h *JobHandler) Report(c *gin.Context) {
	if _, ok := authenticatedUserID(c); !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ReportJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		response.Error(c, apperror.Validation("job_id must be a UUID"))
		return
	}

	updated, err := h.jobSvc.Report(c.Request.Context(), ports.JobReportRequest{
		JobID:             jobID,
		WorkerID:          c.GetString(middleware.CtxWorkerID),
		Status:            domain.JobStatus(req.Status),
		Error:             req.Error,
		ExternalListingID: req.ExternalListingID,
		ExternalProductID: req.ExternalProductID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ReportJobResponse{Updated: updated})
}

// authenticatedUserID pulls the token subject set by the JWT middleware.
func authenticatedUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func toJobResponse(job *domain.ListingJob) dto.JobResponse {
	resp := dto.JobResponse{
		ID:                job.ID.String(),
		UserID:            job.UserID.String(),
		StoreID:           job.StoreID.String(),
		Payload:           string(job.Payload),
		Status:            string(job.Status),
		WorkerID:          job.WorkerID,
		ExternalListingID: job.ExternalListingID,
		ExternalProductID: job.ExternalProductID,
		CreatedAt:         job.CreatedAt.UTC().Format(time.RFC3339),
	}
	if job.ClaimedAt != nil {
		claimed := job.ClaimedAt.UTC().Format(time.RFC3339)
		resp.ClaimedAt = &claimed
	}
	return resp
}
