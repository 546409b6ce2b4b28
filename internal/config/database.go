package config

// DatabaseConfig selects and tunes the team/assignment store.
type DatabaseConfig struct {
	Driver       string // postgres, sqlite or memory
	URL          string
	AutoMigrate  bool
	MaxOpenConns int
	// SeedFile optionally points at a JSON roster loaded into the store at startup.
	SeedFile string
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		Driver:       envOrDefault(envDBDriver, defaultDBDriver),
		URL:          envOrDefault(envDBURL, ""),
		AutoMigrate:  boolEnvOrDefault(envDBAutoMigrate, true),
		MaxOpenConns: intEnvOrDefault(envDBMaxOpenConns, defaultDBMaxOpenConns),
		SeedFile:     envOrDefault(envSeedFile, ""),
	}
}
