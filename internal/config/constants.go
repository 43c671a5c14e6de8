package config

import "time"

const (
	envPort           = "PORT"
	envDataSource     = "DATA_SOURCE"
	envDataDir        = "DATA_DIR"
	envTimezone       = "TIMEZONE"
	envStaticDir      = "STATIC_DIR"
	envCORSOrigins    = "CORS_ALLOWED_ORIGINS"
	envMaxBody        = "CHAT_MAX_BODY_BYTES"
	envShutdown       = "SHUTDOWN_TIMEOUT"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envAugmentKey     = "OPENROUTER_API_KEY"
	envAugmentModel   = "OPENROUTER_MODEL"
	envAugmentURL     = "OPENROUTER_BASE_URL"
	envAugmentTitle   = "OPENROUTER_APP_TITLE"
	envAugmentRefer   = "OPENROUTER_REFERER"
	envAugmentTimeout = "OPENROUTER_TIMEOUT"

	defaultPort        = "3000"
	defaultDataSource  = "fixture"
	defaultDataDir     = "data"
	defaultTimezone    = "Asia/Jakarta"
	defaultCORSOrigins = "*"
	defaultMetricsPort = "9090"
	defaultMaxBody     = 64 << 10

	defaultShutdownTimeout Duration = 10 * time.Second
	defaultServiceName              = "mpl-chat-service"

	defaultAugmentModel   = "meta-llama/llama-3.1-8b-instruct"
	defaultAugmentBaseURL = "https://openrouter.ai/api/v1"
	// Zero means no per-request deadline.
	defaultAugmentTimeout Duration = 0
)
