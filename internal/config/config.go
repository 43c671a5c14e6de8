package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	DataSource  string
	DataDir     string
	Timezone    string
	StaticDir   string
	CORSOrigins []string
	// MaxBodyBytes caps the chat request body.
	MaxBodyBytes    int
	ShutdownTimeout Duration
	Augment         AugmentConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		DataSource:      envOrDefault(envDataSource, defaultDataSource),
		DataDir:         envOrDefault(envDataDir, defaultDataDir),
		Timezone:        envOrDefault(envTimezone, defaultTimezone),
		StaticDir:       envOrDefault(envStaticDir, ""),
		CORSOrigins:     listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		MaxBodyBytes:    intEnvOrDefault(envMaxBody, defaultMaxBody),
		ShutdownTimeout: durationEnvOrDefault(envShutdown, defaultShutdownTimeout),
		Augment:         loadAugment(),
		Metrics:         loadMetrics(),
	}
}
