package service

import (
	"context"
	"fmt"
	"time"

	"listing-automation-service/internal/core/domain"
	"listing-automation-service/internal/core/ports"
	"listing-automation-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// JobQueueServiceImpl implements ports.JobQueueService.
type JobQueueServiceImpl struct {
	jobRepo    ports.JobRepository
	subRepo    ports.SubscriptionRepository
	staleAfter time.Duration
	log        zerolog.Logger
}

// NewJobQueueService creates a new JobQueueServiceImpl.
func NewJobQueueService(
	jobRepo ports.JobRepository,
	subRepo ports.SubscriptionRepository,
	staleAfter time.Duration,
	log zerolog.Logger,
) *JobQueueServiceImpl {
	return &JobQueueServiceImpl{
		jobRepo:    jobRepo,
		subRepo:    subRepo,
		staleAfter: staleAfter,
		log:        log,
	}
}

// ClaimNext hands the next eligible job to a worker. Subscription gating runs
// before any job state is touched: a user without an active subscription gets
// no job, not an error, so paused accounts drain quietly.
func (s *JobQueueServiceImpl) ClaimNext(ctx context.Context, userID uuid.UUID, preferredWorkerID string) (*domain.ListingJob, error) {
	active, err := s.subRepo.HasActive(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("subscription gate: %w", err))
	}
	if !active {
		s.log.Debug().Str("user_id", userID.String()).Msg("Claim refused: no active subscription")
		return nil, nil
	}

	workerID := preferredWorkerID
	if workerID == "" {
		workerID = uuid.NewString()
	}

	staleBefore := time.Now().UTC().Add(-s.staleAfter)
	job, err := s.jobRepo.ClaimNext(ctx, userID, workerID, staleBefore)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("claim job: %w", err))
	}
	if job != nil {
		s.log.Info().
			Str("job_id", job.ID.String()).
			Str("worker_id", workerID).
			Msg("Job claimed")
	}
	return job, nil
}

// Report applies a worker's terminal outcome. The storage CAS decides the
// winner; a duplicate report of the same terminal status by the same worker is
// a benign no-op, while reports from a non-owning worker are rejected.
func (s *JobQueueServiceImpl) Report(ctx context.Context, req ports.JobReportRequest) (bool, error) {
	if !domain.ValidTerminalStatus(req.Status) {
		return false, apperror.ErrInvalidJobStatus(string(req.Status))
	}

	applied, err := s.jobRepo.Report(ctx, ports.JobReportParams{
		JobID:             req.JobID,
		WorkerID:          req.WorkerID,
		Status:            req.Status,
		LastError:         req.Error,
		ExternalListingID: req.ExternalListingID,
		ExternalProductID: req.ExternalProductID,
	})
	if err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("report job: %w", err))
	}
	if applied {
		s.log.Info().
			Str("job_id", req.JobID.String()).
			Str("status", string(req.Status)).
			Msg("Job outcome reported")
		return true, nil
	}

	// Zero rows matched. Distinguish the benign duplicate from a real
	// ownership conflict.
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("load job after report: %w", err))
	}
	if job == nil {
		return false, apperror.ErrNotFound("job")
	}
	if job.IsTerminal() && job.Status == req.Status &&
		job.WorkerID != nil && *job.WorkerID == req.WorkerID {
		s.log.Debug().Str("job_id", req.JobID.String()).Msg("Duplicate terminal report ignored")
		return false, nil
	}
	return false, apperror.ErrReportRejected()
}
