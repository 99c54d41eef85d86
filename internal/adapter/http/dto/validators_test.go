package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := CreateCustomerRequest{
		ExternalRef: "  ext-001  ",
		Email:       "  alice@example.com  ",
		DisplayName: " Alice Co ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "ext-001", req.ExternalRef)
	assert.Equal(t, "alice@example.com", req.Email)
	assert.Equal(t, "Alice Co", req.DisplayName)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	reason := "customer <script>alert('x')</script> request"
	req := RefundChargeRequest{
		ChargeID:    "11111111-1111-1111-1111-111111111111",
		ReferenceID: "ref-001",
		Reason:      reason,
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Reason, "&lt;script&gt;")
	assert.NotContains(t, req.Reason, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	reason := "  late payment  "
	type withPtr struct {
		Note *string
	}
	req := withPtr{Note: &reason}
	SanitizeStruct(&req)
	assert.Equal(t, "late payment", *req.Note)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	var due *string
	type withPtr struct {
		Note *string
	}
	req := withPtr{Note: due}
	SanitizeStruct(&req)
	assert.Nil(t, req.Note)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"ref-001",
		"REF_002",
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
		"ref 001",     // space
		"ref<001>",    // angle brackets
		"ref;DROP",    // semicolon
		"",            // empty
		"hello world", // space
		"ref\n001",    // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}

func TestSanitizeStruct_AttachPaymentMethodRequest(t *testing.T) {
	req := AttachPaymentMethodRequest{
		CustomerID:     "22222222-2222-2222-2222-222222222222",
		ProcessorToken: "  tok_abc  ",
		Type:           " card ",
		Brand:          " <b>visa</b> ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "tok_abc", req.ProcessorToken)
	assert.Equal(t, "card", req.Type)
	assert.Equal(t, "&lt;b&gt;visa&lt;/b&gt;", req.Brand)
}
