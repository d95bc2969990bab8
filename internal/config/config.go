package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Journal   JournalConfig   `yaml:"journal"`
	Auth      AuthConfig      `yaml:"auth"`
	Translate TranslateConfig `yaml:"translate"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// JournalConfig holds journal, vocabulary and progress settings.
type JournalConfig struct {
	// Timezone defines the calendar day boundary for progress and streaks.
	Timezone           string `yaml:"timezone"             env:"JOURNAL_TIMEZONE"             env-default:"Local"`
	HistoryDefaultDays int    `yaml:"history_default_days" env:"JOURNAL_HISTORY_DEFAULT_DAYS" env-default:"7"`
	HistoryMaxDays     int    `yaml:"history_max_days"     env:"JOURNAL_HISTORY_MAX_DAYS"     env-default:"365"`
	MinWordLength      int    `yaml:"min_word_length"      env:"JOURNAL_MIN_WORD_LENGTH"      env-default:"4"`
	PageSizeDefault    int    `yaml:"page_size_default"    env:"JOURNAL_PAGE_SIZE_DEFAULT"    env-default:"20"`
}

// AuthConfig holds the optional bearer-token guard. An empty secret
// leaves the API open, which suits a journal served on localhost.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"tagebuch"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"720h"`
}

// Enabled reports whether the API requires a bearer token.
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// TranslateConfig holds machine translation settings.
type TranslateConfig struct {
	GeminiAPIKey string        `yaml:"gemini_api_key" env:"TRANSLATE_GEMINI_API_KEY"`
	Model        string        `yaml:"model"          env:"TRANSLATE_MODEL"          env-default:"gemini-2.5-flash"`
	BaseURL      string        `yaml:"base_url"       env:"TRANSLATE_BASE_URL"       env-default:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout      time.Duration `yaml:"timeout"        env:"TRANSLATE_TIMEOUT"        env-default:"15s"`
}

// KafkaConfig holds event publishing settings. Empty Brokers disables publishing.
type KafkaConfig struct {
	Brokers string `yaml:"brokers" env:"KAFKA_BROKERS"`
	Topic   string `yaml:"topic"   env:"KAFKA_TOPIC"   env-default:"tagebuch.journal.entry_created"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
