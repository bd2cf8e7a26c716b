// Package config manages application configuration for the Realmkeep API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
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
//   - ServerConfig: HTTP server settings (port, timeouts, CORS)
//   - DatabaseConfig: SurrealDB connection settings
//   - AuthConfig: settings for verifying identity provider tokens
//   - GenerationConfig: text generation provider settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, production, or test
//	DB_HOST, DB_PORT     - SurrealDB address
//	DB_NAMESPACE, DB_DATABASE
//	DB_USER, DB_PASSWORD
//	AUTH_JWT_SECRET      - shared HMAC secret for token verification
//	AUTH_JWT_ISSUER      - expected issuer (optional)
//	AUTH_JWT_AUDIENCE    - expected audience (optional)
//	GENERATION_API_KEY   - text generation provider key
//	GENERATION_BASE_URL  - OpenAI-compatible endpoint override (optional)
//	GENERATION_MODEL     - model name (default: gpt-4o-mini)
package config
