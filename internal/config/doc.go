// Package config defines the application configuration structure and
// loading logic. Values come from an optional config file and from
// environment variables with the USERAUTH_ prefix, with the environment
// taking precedence. Loaded configuration is validated before use.
package config
