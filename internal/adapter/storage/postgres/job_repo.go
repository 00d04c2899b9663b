package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"listing-automation-service/internal/core/domain"
	"listing-automation-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, user_id, store_id, payload, status, worker_id, claimed_at,
		last_error, external_listing_id, external_product_id, created_at, reported_at`

// JobRepo implements ports.JobRepository.
type JobRepo struct {
	pool Pool
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(pool Pool) *JobRepo {
	return &JobRepo{pool: pool}
}

// Enqueue inserts a new queued job.
func (r *JobRepo) Enqueue(ctx context.Context, job *domain.ListingJob) error {
	query := `INSERT INTO listing_jobs (id, user_id, store_id, payload, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		job.ID, job.UserID, job.StoreID, job.Payload, job.Status, job.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert listing job: %w", err)
	}
	return nil
}

// GetByID fetches a job by UUID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ListingJob, error) {
	query := fmt.Sprintf(`SELECT %s FROM listing_jobs WHERE id = $1`, jobColumns)
	return r.scanJob(r.pool.QueryRow(ctx, query, id))
}

// ClaimNext atomically claims the oldest eligible job for the user. The
// claim is a single conditional UPDATE over a locked sub-select; SKIP LOCKED
// guarantees concurrent callers racing for the same row have exactly one
// winner, with losers moving on to the next eligible row or none.
func (r *JobRepo) ClaimNext(ctx context.Context, userID uuid.UUID, workerID string, staleBefore time.Time) (*domain.ListingJob, error) {
	query := fmt.Sprintf(`UPDATE listing_jobs
		SET status = 'processing', worker_id = $2, claimed_at = now(), last_error = NULL
		WHERE id = (
			SELECT id FROM listing_jobs
			WHERE user_id = $1
			  AND (status = 'queued' OR (status = 'processing' AND claimed_at < $3))
			ORDER BY created_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING %s`, jobColumns)

	return r.scanJob(r.pool.QueryRow(ctx, query, userID, workerID, staleBefore))
}

// Report applies a terminal outcome with a compare-and-swap on the job's
// status and owning worker. Zero rows matched means the race was lost or the
// outcome was already reported; that is reported as (false, nil), not an error.
func (r *JobRepo) Report(ctx context.Context, p ports.JobReportParams) (bool, error) {
	query := `UPDATE listing_jobs
		SET status = $1,
		    last_error = $2,
		    external_listing_id = COALESCE($3, external_listing_id),
		    external_product_id = COALESCE($4, external_product_id),
		    reported_at = now()
		WHERE id = $5 AND worker_id = $6 AND status = 'processing'`

	tag, err := r.pool.Exec(ctx, query,
		p.Status, p.LastError, p.ExternalListingID, p.ExternalProductID,
		p.JobID, p.WorkerID,
	)
	if err != nil {
		return false, fmt.Errorf("report job outcome: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// scanJob is a helper to scan a single row into a ListingJob.
func (r *JobRepo) scanJob(row pgx.Row) (*domain.ListingJob, error) {
	j := &domain.ListingJob{}
	err := row.Scan(
		&j.ID, &j.UserID, &j.StoreID, &j.Payload, &j.Status,
		&j.WorkerID, &j.ClaimedAt, &j.LastError,
		&j.ExternalListingID, &j.ExternalProductID,
		&j.CreatedAt, &j.ReportedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan listing job: %w", err)
	}
	return j, nil
}
