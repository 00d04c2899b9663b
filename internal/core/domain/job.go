package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the lifecycle state of a listing job.
type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// ListingJob is one unit of outbound listing-automation work for one user.
// A job is claimed exclusively by one worker at a time; a claim that goes
// unreported past the staleness window is eligible for re-claim.
type ListingJob struct {
	ID                uuid.UUID       `json:"id"`
	UserID            uuid.UUID       `json:"user_id"`
	StoreID           uuid.UUID       `json:"store_id"`
	Payload           json.RawMessage `json:"payload"` // Listing payload; versioned external contract
	Status            JobStatus       `json:"status"`
	WorkerID          *string         `json:"worker_id,omitempty"`
	ClaimedAt         *time.Time      `json:"claimed_at,omitempty"`
	LastError         *string         `json:"last_error,omitempty"`
	ExternalListingID *string         `json:"external_listing_id,omitempty"`
	ExternalProductID *string         `json:"external_product_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	ReportedAt        *time.Time      `json:"reported_at,omitempty"`
}

// IsTerminal returns true if the job is in a final state.
func (j *ListingJob) IsTerminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}

// ClaimStale returns true if the job is processing but its claim has exceeded
// the staleness window, making it eligible for re-claim.
func (j *ListingJob) ClaimStale(staleAfter time.Duration, now time.Time) bool {
	return j.Status == JobStatusProcessing &&
		j.ClaimedAt != nil &&
		now.Sub(*j.ClaimedAt) > staleAfter
}

// ValidTerminalStatus reports whether s is an acceptable status for a report.
func ValidTerminalStatus(s JobStatus) bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}
