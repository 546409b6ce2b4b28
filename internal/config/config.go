package config

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	Verifier   string
	CORSOrigin string
	Recaptcha  RecaptchaConfig
	Database   DatabaseConfig
	Metrics    MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		Verifier:   envOrDefault(envVerifier, defaultVerifier),
		CORSOrigin: envOrDefault(envCORSOrigin, ""),
		Recaptcha:  loadRecaptcha(),
		Database:   loadDatabase(),
		Metrics:    loadMetrics(),
	}
}
