package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Retryable(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeTimeout, true},
		{ErrCodeConnectionFailed, true},
		{ErrCodeExternalService, true},
		{ErrCodeNotFound, false},
		{ErrCodeDecode, false},
		{ErrCodeInvalidInput, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.code), func(t *testing.T) {
			err := New(tc.code, "msg", http.StatusTeapot)
			if err.Retryable != tc.want {
				t.Errorf("New(%s).Retryable = %v, want %v", tc.code, err.Retryable, tc.want)
			}
			if err.HTTPStatus != http.StatusTeapot {
				t.Errorf("expected status %d, got %d", http.StatusTeapot, err.HTTPStatus)
			}
		})
	}
}

func TestAppError_ConnectionFailed(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := ConnectionFailed("http://example.com/a.css", cause)
	if err.Code != ErrCodeConnectionFailed {
		t.Errorf("expected CONNECTION_FAILED, got %s", err.Code)
	}
	if !err.Retryable {
		t.Error("ConnectionFailed should be retryable")
	}
	if err.Details["url"] != "http://example.com/a.css" {
		t.Errorf("expected url detail, got %v", err.Details["url"])
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestAppError_ExternalService_RetryableByStatus(t *testing.T) {
	if ExternalService("u", http.StatusBadRequest).Retryable {
		t.Error("400 should not be retryable")
	}
	if !ExternalService("u", http.StatusServiceUnavailable).Retryable {
		t.Error("503 should be retryable")
	}
	if !ExternalService("u", http.StatusTooManyRequests).Retryable {
		t.Error("429 should be retryable")
	}
	if got := ExternalService("u", 500).Details["status"]; got != 500 {
		t.Errorf("expected status detail 500, got %v", got)
	}
}

func TestAppError_NotFound(t *testing.T) {
	err := NotFound("http://x/y")
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %d", err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("NotFound should not be retryable")
	}
}

func TestAppError_Decode(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF")
	err := Decode("http://x", "json", cause)
	if err.Code != ErrCodeDecode {
		t.Errorf("expected DECODE_ERROR, got %s", err.Code)
	}
	if !strings.Contains(err.Error(), "unexpected EOF") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_InvalidInput(t *testing.T) {
	err := InvalidInput("dp", "must be a number")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["field"] != "dp" {
		t.Errorf("expected field=dp, got %v", err.Details["field"])
	}

	if _, ok := InvalidInput("", "x").Details["field"]; ok {
		t.Error("expected no field detail for empty field")
	}
}

func TestAppError_WithCause_WithDetail(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Validation("bad").WithCause(cause).WithDetail("extra", 1)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if err.Details["extra"] != 1 {
		t.Errorf("expected extra=1, got %v", err.Details["extra"])
	}
	if err.Error() != "INVALID_INPUT: bad (cause: root cause)" {
		t.Errorf("unexpected Error(): %q", err.Error())
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", MissingField("url"))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to find the AppError")
	}
	if appErr.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", appErr.Code)
	}

	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected plain error not to be an AppError")
	}
}

func TestInternalAndInvalidFormat(t *testing.T) {
	if Internal(nil).HTTPStatus != http.StatusInternalServerError {
		t.Error("expected 500 for Internal")
	}
	err := InvalidFormat("format", "json|text")
	if err.Details["expected_format"] != "json|text" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}
