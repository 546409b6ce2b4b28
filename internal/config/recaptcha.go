package config

const defaultRecaptchaURL = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaConfig controls how proof tokens are verified upstream.
type RecaptchaConfig struct {
	// SecretKey may be empty; the relay then answers with a configuration error
	// instead of refusing to start.
	SecretKey string
	VerifyURL string
	MinScore  float64
	Timeout   Duration

	// PassTTL bounds how long a relay-issued draw pass stays redeemable.
	PassTTL Duration
}

func loadRecaptcha() RecaptchaConfig {
	return RecaptchaConfig{
		SecretKey: envOrDefault(envRecaptchaSecret, ""),
		VerifyURL: envOrDefault(envRecaptchaURL, defaultRecaptchaURL),
		MinScore:  floatEnvOrDefault(envRecaptchaMin, defaultRecaptchaMinScore),
		Timeout:   durationEnvOrDefault(envRecaptchaTTL, defaultRecaptchaTimeout),
		PassTTL:   durationEnvOrDefault(envRecaptchaPass, defaultRecaptchaPassTTL),
	}
}
