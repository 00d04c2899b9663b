package dto

// ClaimJobRequest is the request body for claiming the next listing job.
type ClaimJobRequest struct {
	PreferredWorkerID string `json:"preferred_worker_id,omitempty" binding:"omitempty,safe_id,max=100"`
}

// ReportJobRequest is the request body for reporting a terminal job outcome.
type ReportJobRequest struct {
	JobID             string  `json:"job_id" binding:"required,uuid"`
	Status            string  `json:"status" binding:"required,oneof=completed failed"`
	Error             *string `json:"error,omitempty" binding:"omitempty,max=2000"`
	ExternalListingID *string `json:"external_listing_id,omitempty" binding:"omitempty,max=255"`
	ExternalProductID *string `json:"external_product_id,omitempty" binding:"omitempty,max=255"`
}

// JobResponse is the worker-facing view of a claimed job.
type JobResponse struct {
	ID                string  `json:"id"`
	UserID            string  `json:"user_id"`
	StoreID           string  `json:"store_id"`
	Payload           string  `json:"payload"`
	Status            string  `json:"status"`
	WorkerID          *string `json:"worker_id,omitempty"`
	ClaimedAt         *string `json:"claimed_at,omitempty"`
	ExternalListingID *string `json:"external_listing_id,omitempty"`
	ExternalProductID *string `json:"external_product_id,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

// ReportJobResponse confirms a job outcome report.
type ReportJobResponse struct {
	Updated bool `json:"updated"`
}

// WebhookConfigRequest is the request body for creating or updating a
// webhook config.
type WebhookConfigRequest struct {
	Name          string            `json:"name" binding:"required,min=1,max=100"`
	TargetURL     string            `json:"target_url" binding:"required,safe_url,max=2048"`
	Method        string            `json:"method" binding:"required,oneof=GET POST"`
	Headers       map[string]string `json:"headers,omitempty"`
	Body          *string           `json:"body,omitempty"`
	Enabled       bool              `json:"enabled"`
	Scope         string            `json:"scope" binding:"required,oneof=automation cron_test"`
	Description   *string           `json:"description,omitempty" binding:"omitempty,max=500"`
	ProductTypeID *string           `json:"product_type_id,omitempty" binding:"omitempty,uuid"`
}

// WebhookConfigResponse is the API view of a webhook config.
type WebhookConfigResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	TargetURL     string            `json:"target_url"`
	Method        string            `json:"method"`
	Headers       map[string]string `json:"headers,omitempty"`
	Body          *string           `json:"body,omitempty"`
	Enabled       bool              `json:"enabled"`
	Scope         string            `json:"scope"`
	Description   *string           `json:"description,omitempty"`
	ProductTypeID *string           `json:"product_type_id,omitempty"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     *string           `json:"updated_at,omitempty"`
}

// ReconcileRequest is the request body for an order reconciliation run.
type ReconcileRequest struct {
	Mode        string `json:"mode" binding:"omitempty,oneof=live test all"`
	WindowDays  int    `json:"window_days" binding:"omitempty,min=1,max=365"`
	MaxSessions int    `json:"max_sessions" binding:"omitempty,min=1,max=100"`
	DryRun      bool   `json:"dry_run"`
}

// RevenueQuery holds the query parameters for the revenue report.
type RevenueQuery struct {
	Months   int    `form:"months" binding:"omitempty,min=1,max=24"`
	Mode     string `form:"mode" binding:"omitempty,oneof=live test all"`
	Currency string `form:"currency" binding:"omitempty,len=3"`
}

// DispatchLogQuery holds the query parameters for the dispatch log listing.
type DispatchLogQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// DispatchLogResponse is the API view of one dispatch log row.
type DispatchLogResponse struct {
	ID             string            `json:"id"`
	ConfigID       string            `json:"config_id"`
	IdempotencyKey string            `json:"idempotency_key"`
	RequestURL     string            `json:"request_url"`
	Method         string            `json:"method"`
	RequestHeaders map[string]string `json:"request_headers,omitempty"`
	ResponseStatus *int              `json:"response_status,omitempty"`
	ResponseBody   *string           `json:"response_body,omitempty"`
	DurationMS     int64             `json:"duration_ms"`
	Outcome        string            `json:"outcome"`
	Principal      string            `json:"principal"`
	CreatedAt      string            `json:"created_at"`
}

// LedgerEventRequest is the envelope posted by the external ledger. Only
// checkout.session.completed events are acted on; everything else is
// acknowledged and dropped.
type LedgerEventRequest struct {
	ID       string          `json:"id" binding:"required,max=255"`
	Type     string          `json:"type" binding:"required,max=100"`
	Livemode bool            `json:"livemode"`
	Data     LedgerEventData `json:"data" binding:"required"`
}

// LedgerEventData wraps the event payload object.
type LedgerEventData struct {
	Object LedgerSessionObject `json:"object" binding:"required"`
}

// LedgerSessionObject is the checkout session embedded in a ledger event.
type LedgerSessionObject struct {
	ID            string            `json:"id" binding:"required,max=255"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	Created       int64             `json:"created"`
}

// LedgerEventResponse acknowledges an ingested ledger event.
type LedgerEventResponse struct {
	Received        bool `json:"received"`
	PaymentRecorded bool `json:"payment_recorded"`
	OrderMarkedPaid bool `json:"order_marked_paid"`
}
