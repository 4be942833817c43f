// Package logger provides structured logging for iva using zerolog.
//
// Library code obtains component loggers with Get ("fetch", "console", ...)
// and never configures output itself; binaries call Init once with a Config.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console" # or "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("fetch")
//	log.Debug("fetched", logger.Fields("url", u, "status", 200))
package logger
