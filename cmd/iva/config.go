package main

import (
	"fmt"

	"github.com/ivakit/iva/config"
	"github.com/ivakit/iva/fetch"
	"github.com/ivakit/iva/observability"
)

const serviceName = "iva"

// AppConfig is the CLI configuration, read from iva.yml / config.yml and
// IVA_* environment variables.
//
//	name: iva
//	logging:
//	  level: info
//	fetch:
//	  timeout: 10s
//	  max_body_size: 10MB
//	observability:
//	  enabled: true
//	  endpoint: localhost:4318
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Fetch         fetch.Config         `yaml:"fetch" mapstructure:"fetch"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

func (c *AppConfig) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Fetch.ApplyDefaults()
	if c.Observability.Environment == "" {
		c.Observability.Environment = c.Environment
	}
	if c.Observability.Enabled {
		c.Observability.ApplyDefaults()
	}
}

func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Fetch.Validate(); err != nil {
		return fmt.Errorf("config.fetch: %w", err)
	}
	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("config.observability: %w", err)
	}
	return nil
}
