package constants

// Environment is the deployment mode read from APP_ENV.
type Environment string

const (
	EnvProduction  Environment = "production"
	EnvDevelopment Environment = "development"
)

const (
	DefaultSecretKey = "default-secret-key-2025"
	DefaultPort      = 5000
	DefaultDBPath    = "messages.db"
)
