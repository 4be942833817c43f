// Package errors provides the structured error type shared by iva packages.
//
// Pure helpers in iva never fail; errors come from two places only: the
// network boundary (fetch) and input validation (configs, CLI arguments).
// Both are reported as *AppError values carrying a machine-readable code,
// a recommended HTTP status and a retryable flag. The original cause is kept
// and reachable through errors.Is / errors.As.
package errors
