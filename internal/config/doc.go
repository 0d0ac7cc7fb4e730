// Package config manages application configuration for the datematch API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single source
// of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS, base URL)
//   - RedisConfig: Redis connection settings
//   - EventsConfig: event storage settings (rolling TTL)
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, production, or test
//	CORS_ALLOWED_ORIGINS - comma-separated origin allow list
//	BASE_URL             - public base URL for share links
//	REDIS_ADDR           - Redis host:port (default: localhost:6379)
//	REDIS_PASSWORD       - Redis password (default: empty)
//	REDIS_DB             - Redis logical database (default: 0)
//	EVENT_TTL            - rolling event lifetime (default: 2160h, 90 days)
//
// # Default Values
//
// Sensible defaults are provided for development, so a bare environment runs
// against a local Redis with no further setup.
package config
