package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := WebhookConfigRequest{
		Name:      "  relist hook  ",
		TargetURL: " https://hooks.example.com/x ",
		Method:    "POST",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "relist hook", req.Name)
	assert.Equal(t, "https://hooks.example.com/x", req.TargetURL)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	desc := "fires on <script>alert('x')</script> relist"
	req := WebhookConfigRequest{
		Name:        "hook",
		Description: &desc,
	}
	SanitizeStruct(&req)

	assert.Contains(t, *req.Description, "&lt;script&gt;")
	assert.NotContains(t, *req.Description, "<script>")
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	req := WebhookConfigRequest{Name: "hook", Description: nil}
	SanitizeStruct(&req)
	assert.Nil(t, req.Description)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

func TestSanitizeStruct_ReportRequest(t *testing.T) {
	listingID := "  LST-001  "
	req := ReportJobRequest{
		JobID:             "  11111111-2222-3333-4444-555555555555  ",
		Status:            " completed ",
		ExternalListingID: &listingID,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "11111111-2222-3333-4444-555555555555", req.JobID)
	assert.Equal(t, "completed", req.Status)
	assert.Equal(t, "LST-001", *req.ExternalListingID)
}

// --- Custom validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"worker-001",
		"WORKER_002",
		"a.b.c",
		"simple123",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"worker 001",  // space
		"worker<001>", // angle brackets
		"w;DROP",      // semicolon
		"",            // empty
		"hello world", // space
		"w\n001",      // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}
