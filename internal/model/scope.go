package model

// Scope identifies the caller of a request.
type Scope struct {
	UserID   string
	Username string
}

// Environment names
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
