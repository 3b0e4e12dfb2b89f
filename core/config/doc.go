// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and parses
// environment variables into struct fields with the caarlos0/env library.
//
// Basic usage with a storage backend config:
//
//	import (
//		"github.com/docsvault/filekit/core/config"
//		"github.com/docsvault/filekit/integration/storage/s3"
//	)
//
//	var cfg s3.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful at startup)
//	config.MustLoad(&cfg)
//
// Each configuration type is loaded only once per process; later Load calls
// for the same type return the cached value.
package config
