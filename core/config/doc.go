// Package config provides configuration management for the Translation Manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Log: Logging level and format
//   - LLM: Chat-completions endpoint, credentials, model, and batching
//
// Defaults are declared on the struct fields via `default` tags and bound
// through reflection, so SERVER_PORT=9090 overrides server.port and so on.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
