package config

import "time"

const (
	envPort            = "PORT"
	envVerifier        = "VERIFIER"
	envRecaptchaSecret = "RECAPTCHA_SECRET_KEY"
	envRecaptchaURL    = "RECAPTCHA_VERIFY_URL"
	envRecaptchaMin    = "RECAPTCHA_MIN_SCORE"
	envRecaptchaTTL    = "RECAPTCHA_TIMEOUT"
	envRecaptchaPass   = "RECAPTCHA_PASS_TTL"
	envDBDriver        = "DATABASE_DRIVER"
	envDBURL           = "DATABASE_URL"
	envDBAutoMigrate   = "DATABASE_AUTO_MIGRATE"
	envDBMaxOpenConns  = "DB_MAX_OPEN_CONNS"
	envSeedFile        = "SEED_TEAMS_FILE"
	envCORSOrigin      = "CORS_ALLOWED_ORIGIN"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultVerifier = "recaptcha"
	// Google recommends 0.5 as the starting threshold for v3 scores.
	defaultRecaptchaMinScore = 0.5
	defaultRecaptchaTimeout  = 10 * Duration(time.Second)
	defaultRecaptchaPassTTL  = 2 * Duration(time.Minute)
	defaultDBDriver          = "memory"
	defaultDBMaxOpenConns    = 10
	defaultMetricsPort       = "9090"
	defaultServiceName       = "badminton-draw-service"
)
