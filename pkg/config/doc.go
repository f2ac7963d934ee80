// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a convenient API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Caches each successfully loaded configuration type so it is only parsed
//     once for the lifetime of the process.
//   - Exposes helpers that panic on failure (`MustLoadEnv`, `MustLoad`) for
//     scenarios where configuration is critical.
//   - Allows explicit cache reset which is handy in tests.
//
// # Architecture
//
// Internally the package keeps a singleton `configCache` that stores parsed
// struct copies keyed by their fully-qualified type name. Each key also holds
// a `sync.Once` instance guaranteeing the expensive parsing work is executed
// at most once per configuration type even when accessed from multiple
// goroutines concurrently.
//
// # Usage
//
//	type SessionConfig struct {
//		TokenFile string `env:"SESSION_TOKEN_FILE" envDefault:".panelkit_token"`
//	}
//
//	var cfg SessionConfig
//	config.MustLoad(&cfg)
package config
