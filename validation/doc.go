// Package validation checks configuration and command input for iva.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Both report failures as
// *errors.AppError with the offending fields under Details["fields"].
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Timeout     time.Duration `validate:"gte=0"`
//	    MaxBodySize int64         `validate:"gte=0"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.URL("url", rawURL).OneOf("format", format, []string{"json", "text"})
//	err := v.Validate()
package validation
