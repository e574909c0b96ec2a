// Package constants defines shared constant values used across layers.
package constants

// Context keys set by the auth middleware and read by handlers.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Environment names recognized by the CLI and the migration manager.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)
