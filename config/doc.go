// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Selected values can be overridden through the environment (optionally via
// a .env file) so the service can run unconfigured against the public API.
package config
