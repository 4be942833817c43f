// Package config loads iva configuration from a YAML file, a .env file and
// environment variables.
//
// Viper reads the YAML file first. Environment variables carrying the
// service prefix (IVA_FETCH_TIMEOUT for service "iva") then override the
// matching nested keys (fetch.timeout), including variables loaded from a
// .env file with godotenv.
//
// # Usage
//
//	var cfg AppConfig // embeds config.ServiceConfig
//	err := config.Load("iva", &cfg, config.WithConfigFile(path))
package config
