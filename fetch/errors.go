package fetch

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"

	"github.com/ivakit/iva/errors"
)

// errBodyTooLarge is reported as a connection error when a body exceeds
// Config.MaxBodySize.
var errBodyTooLarge = stderrors.New("response body exceeds max_body_size")

// ErrorCode classifies fetch errors.
type ErrorCode int

const (
	// ErrCodeConnection indicates the server could not be reached or the
	// body could not be read.
	ErrCodeConnection ErrorCode = iota
	// ErrCodeTimeout indicates the request deadline passed or its context
	// was cancelled.
	ErrCodeTimeout
	// ErrCodeStatus indicates a non-2xx response with FailOnStatus set.
	ErrCodeStatus
	// ErrCodeDecode indicates a body that is not valid for the format.
	ErrCodeDecode
	// ErrCodeRequest indicates the request could not be built, e.g. a
	// malformed URL.
	ErrCodeRequest
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeConnection:
		return "connection"
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeStatus:
		return "status"
	case ErrCodeDecode:
		return "decode"
	case ErrCodeRequest:
		return "request"
	default:
		return "unknown"
	}
}

// Error is a classified fetch failure.
type Error struct {
	// URL is the requested URL.
	URL string
	// StatusCode is the HTTP status code (0 before a response arrived).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Body holds the start of a non-2xx response body.
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch %s: %s (HTTP %d): %s", e.URL, e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fetch %s: %s: %s", e.URL, e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// AppError converts e into the application error taxonomy.
func (e *Error) AppError() *errors.AppError {
	switch e.Code {
	case ErrCodeTimeout:
		return errors.Timeout(e.URL, e)
	case ErrCodeStatus:
		if e.StatusCode == http.StatusNotFound {
			return errors.NotFound(e.URL).WithCause(e)
		}
		return errors.ExternalService(e.URL, e.StatusCode).WithCause(e)
	case ErrCodeDecode:
		return errors.Decode(e.URL, decodeFormat(e), e)
	case ErrCodeRequest:
		return errors.InvalidInput("url", e.Message).WithCause(e)
	default:
		return errors.ConnectionFailed(e.URL, e)
	}
}

func decodeFormat(e *Error) string {
	var de *decodeError
	if stderrors.As(e.Err, &de) {
		return string(de.format)
	}
	return ""
}

// decodeError wraps a body decoding failure with its format.
type decodeError struct {
	format Format
	err    error
}

func (d *decodeError) Error() string { return fmt.Sprintf("invalid %s: %v", d.format, d.err) }
func (d *decodeError) Unwrap() error { return d.err }

func newRequestError(url string, err error) *Error {
	return &Error{URL: url, Code: ErrCodeRequest, Message: err.Error(), Err: err}
}

// newTransportError classifies a failure from http.Client.Do or from
// reading the body.
func newTransportError(ctx context.Context, url string, err error) *Error {
	code := ErrCodeConnection
	var netErr net.Error
	switch {
	case ctx.Err() != nil, stderrors.Is(err, context.DeadlineExceeded), stderrors.Is(err, context.Canceled):
		code = ErrCodeTimeout
	case stderrors.As(err, &netErr) && netErr.Timeout():
		code = ErrCodeTimeout
	}
	return &Error{URL: url, Code: code, Message: err.Error(), Err: err}
}

func newStatusError(url string, status int, body []byte) *Error {
	return &Error{
		URL:        url,
		StatusCode: status,
		Code:       ErrCodeStatus,
		Message:    http.StatusText(status),
		Body:       body,
	}
}

func newDecodeError(url string, status int, format Format, err error) *Error {
	de := &decodeError{format: format, err: err}
	return &Error{URL: url, StatusCode: status, Code: ErrCodeDecode, Message: de.Error(), Err: de}
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Code == code
}

// IsTimeout reports whether err is a fetch timeout or cancellation.
func IsTimeout(err error) bool { return hasCode(err, ErrCodeTimeout) }

// IsConnection reports whether err is a fetch connection failure.
func IsConnection(err error) bool { return hasCode(err, ErrCodeConnection) }

// IsStatus reports whether err is a non-2xx response.
func IsStatus(err error) bool { return hasCode(err, ErrCodeStatus) }

// IsDecode reports whether err is a body decoding failure.
func IsDecode(err error) bool { return hasCode(err, ErrCodeDecode) }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if stderrors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
