package config

// GetHost returns the listener bind address
func GetHost() string {
	return GetEnvOrDefault("HOST", "0.0.0.0")
}

// GetPort returns the listener port
func GetPort() string {
	return GetEnvOrDefault("PORT", "8000")
}

// GetEnvironment returns the deployment environment, "development" or "production"
func GetEnvironment() string {
	return GetEnvOrDefault("ENVIRONMENT", "production")
}

// IsDevelopment reports whether the service runs in development mode
func IsDevelopment() bool {
	return GetEnvironment() == "development"
}
