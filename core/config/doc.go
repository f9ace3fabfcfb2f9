// Package config provides configuration management for dropship-sync.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Supplier: dropshipping API credentials and endpoint
//   - Storefront: commerce platform domain, auth, and location id
//   - Sync: batch concurrency
//   - Server: HTTP control-plane settings (port, API key)
//   - Log: logging level and format
//
// Required credentials are validated at load time; a run never starts with
// missing supplier or storefront auth.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storefront.Store)
package config
