package fetch

import (
	"fmt"
	"time"

	"github.com/ivakit/iva/errors"
	"github.com/ivakit/iva/util"
	"github.com/ivakit/iva/validation"
	"github.com/ivakit/iva/version"
)

// Format selects how a response body is decoded.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Formats lists the supported formats.
var Formats = []string{string(FormatJSON), string(FormatText)}

// Config configures a Client.
type Config struct {
	// Timeout bounds each request. Zero means no client-side timeout; the
	// caller's context still applies.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// UserAgent is sent with every request. Defaults to "iva/<version>".
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent" validate:"max=256"`

	// Headers are added to every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// MaxBodySize caps how much of a response body is read, as a size such
	// as "10MB" or "512KiB". Empty means unlimited.
	MaxBodySize string `yaml:"max_body_size" mapstructure:"max_body_size"`

	// FailOnStatus turns non-2xx responses into status errors. By default
	// their bodies are decoded and returned like any other response.
	FailOnStatus bool `yaml:"fail_on_status" mapstructure:"fail_on_status"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.MaxBodySize != "" && c.maxBodyBytes() <= 0 {
		return errors.InvalidFormat("max_body_size", fmt.Sprintf("a positive size such as 10MB (got %q)", c.MaxBodySize))
	}
	return nil
}

// maxBodyBytes returns the body limit in bytes, 0 when unlimited and -1
// when MaxBodySize cannot be parsed.
func (c *Config) maxBodyBytes() int64 {
	if c.MaxBodySize == "" {
		return 0
	}
	return util.ParseSize(c.MaxBodySize, -1)
}
