package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/ivakit/iva/errors"
)

func TestValidatorRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"present", "https://example.com", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New().Required("url", tc.value)
			if v.HasErrors() != tc.wantErr {
				t.Errorf("HasErrors() = %v, want %v", v.HasErrors(), tc.wantErr)
			}
		})
	}
}

func TestValidatorURL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"https", "https://cdn.example.com/a.css", false},
		{"http with port", "http://localhost:8080/x", false},
		{"empty", "", true},
		{"relative", "/styles/a.css", true},
		{"ftp scheme", "ftp://example.com/a.css", true},
		{"no host", "https://", true},
		{"garbage", "://bad", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New().URL("url", tc.value)
			if v.HasErrors() != tc.wantErr {
				t.Errorf("URL(%q) HasErrors() = %v, want %v", tc.value, v.HasErrors(), tc.wantErr)
			}
		})
	}
}

func TestValidatorURLs(t *testing.T) {
	v := New().URLs("urls", []string{"https://a.example/a.css", "nope", ""})
	errs := v.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "urls[1]" || errs[1].Field != "urls[2]" {
		t.Errorf("unexpected fields: %q, %q", errs[0].Field, errs[1].Field)
	}
}

func TestValidatorRange(t *testing.T) {
	if New().Range("dp", 2, 0, 100).HasErrors() {
		t.Error("expected no error for value in range")
	}
	if !New().Range("dp", -1, 0, 100).HasErrors() {
		t.Error("expected error for value below range")
	}
	if !New().Range("dp", 101, 0, 100).HasErrors() {
		t.Error("expected error for value above range")
	}
}

func TestValidatorMin(t *testing.T) {
	if New().Min("count", 1, 1).HasErrors() {
		t.Error("expected no error at the minimum")
	}
	if !New().Min("count", 0, 1).HasErrors() {
		t.Error("expected error for value below min")
	}
}

func TestValidatorOneOf(t *testing.T) {
	formats := []string{"json", "text"}
	if New().OneOf("format", "json", formats).HasErrors() {
		t.Error("expected no error for valid value")
	}
	if New().OneOf("format", "", formats).HasErrors() {
		t.Error("expected empty value to be skipped")
	}
	v := New().OneOf("format", "xml", formats)
	if !v.HasErrors() {
		t.Fatal("expected error for invalid value")
	}
	if got := v.Errors()[0].Message; got != "must be one of: json, text" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestValidatorCustom(t *testing.T) {
	if New().Custom(true, "field", "should pass").HasErrors() {
		t.Error("expected no error for true condition")
	}
	v := New().Custom(false, "field", "custom error")
	if !v.HasErrors() || v.Errors()[0].Message != "custom error" {
		t.Errorf("expected 'custom error', got %v", v.Errors())
	}
}

func TestValidatorValidate(t *testing.T) {
	if appErr := New().Required("url", "https://example.com").Validate(); appErr != nil {
		t.Errorf("expected nil for valid input, got %v", appErr)
	}

	appErr := New().Required("url", "").OneOf("format", "xml", []string{"json"}).Validate()
	if appErr == nil {
		t.Fatal("expected error")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", errors.ErrCodeInvalidInput, appErr.Code)
	}
	if _, ok := appErr.Details["fields"].([]FieldError); !ok {
		t.Errorf("expected field errors in details, got %T", appErr.Details["fields"])
	}
	if !strings.Contains(appErr.Message, "url") || !strings.Contains(appErr.Message, "format") {
		t.Errorf("expected both fields in message, got %q", appErr.Message)
	}
}

func TestValidatorChaining(t *testing.T) {
	v := New()
	result := v.Required("url", "https://example.com").URL("url", "https://example.com").Min("count", 2, 1)
	if result != v {
		t.Error("expected chaining to return same validator")
	}
	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}
}

func TestRequiredFunc(t *testing.T) {
	if err := Required("name", "value"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := Required("name", ""); err == nil {
		t.Error("expected error for empty required field")
	}
}

type clientConfig struct {
	Timeout     time.Duration `mapstructure:"timeout" validate:"gte=0"`
	UserAgent   string        `mapstructure:"user_agent" validate:"max=16"`
	MaxBodySize int64         `json:"max_body_size" validate:"gte=0"`
	Format      string        `validate:"omitempty,oneof=json text"`
}

func TestStructValidateValid(t *testing.T) {
	cfg := clientConfig{Timeout: time.Second, UserAgent: "iva", MaxBodySize: 1 << 20, Format: "json"}
	if err := Validate(cfg); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if err := Validate(clientConfig{}); err != nil {
		t.Errorf("expected zero config to be valid, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	cfg := clientConfig{Timeout: -time.Second, UserAgent: strings.Repeat("x", 17), MaxBodySize: -1, Format: "xml"}
	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}

	fields, _ := appErr.Details["fields"].([]FieldError)
	got := make(map[string]string, len(fields))
	for _, f := range fields {
		got[f.Field] = f.Message
	}
	want := map[string]string{
		"timeout":       "must be greater than or equal to 0",
		"user_agent":    "must be at most 16 characters",
		"max_body_size": "must be greater than or equal to 0",
		"format":        "must be one of: json text",
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("field %s: got %q, want %q", field, got[field], msg)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Timeout":     "timeout",
		"MaxBodySize": "max_body_size",
		"already":     "already",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
