package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DispatchOutcome classifies one dispatch attempt.
type DispatchOutcome string

const (
	OutcomeDelivered        DispatchOutcome = "delivered"
	OutcomeFailed           DispatchOutcome = "failed"
	OutcomeSkippedDuplicate DispatchOutcome = "skipped_duplicate"
	OutcomeSkippedRateLimit DispatchOutcome = "skipped_rate_limited"
)

// DispatchLog is the audit record of one outbound webhook call. Request
// headers are redacted before the row is written.
type DispatchLog struct {
	ID             uuid.UUID         `json:"id"`
	ConfigID       uuid.UUID         `json:"config_id"`
	IdempotencyKey string            `json:"idempotency_key"`
	RequestURL     string            `json:"request_url"`
	Method         string            `json:"method"`
	RequestHeaders map[string]string `json:"request_headers,omitempty"`
	RequestBody    *string           `json:"request_body,omitempty"`
	ResponseStatus *int              `json:"response_status,omitempty"`
	ResponseBody   *string           `json:"response_body,omitempty"`
	DurationMS     int64             `json:"duration_ms"`
	Outcome        DispatchOutcome   `json:"outcome"`
	Principal      string            `json:"principal"` // Who triggered the tick
	CreatedAt      time.Time         `json:"created_at"`
}

// Header names whose values are never persisted in dispatch logs.
var sensitiveHeaders = map[string]struct{}{
	"authorization":       {},
	"x-api-key":           {},
	"x-auth-token":        {},
	"proxy-authorization": {},
	"cookie":              {},
}

// RedactHeaders returns a copy of headers with secret values masked.
func RedactHeaders(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if _, secret := sensitiveHeaders[strings.ToLower(k)]; secret {
			out[k] = "[REDACTED]"
			continue
		}
		out[k] = v
	}
	return out
}
