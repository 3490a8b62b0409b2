package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Storage   StorageConfig   `yaml:"storage"`
	Router    RouterConfig    `yaml:"router"`
	Providers ProvidersConfig `yaml:"providers"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"               env:"SERVER_HOST"               env-default:"0.0.0.0"`
	Port            int           `yaml:"port"               env:"SERVER_PORT"               env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"       env:"SERVER_READ_TIMEOUT"       env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"      env:"SERVER_WRITE_TIMEOUT"      env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"       env:"SERVER_IDLE_TIMEOUT"       env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"   env:"SERVER_SHUTDOWN_TIMEOUT"   env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds settings for the shared provider-health store.
// When Addr is empty, an in-process store is used instead.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB" env-default:"0"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"        env:"AUTH_JWT_SECRET"        env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"        env:"AUTH_JWT_ISSUER"        env-default:"campaignkit"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"AUTH_ACCESS_TOKEN_TTL"  env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"AUTH_REFRESH_TOKEN_TTL" env-default:"720h"`

	// PasswordHashCost is the bcrypt cost. Tests use the minimum for speed.
	PasswordHashCost int `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// StorageConfig holds R2 (S3-compatible) object storage settings.
type StorageConfig struct {
	Endpoint        string        `yaml:"endpoint"          env:"STORAGE_ENDPOINT"          env-required:"true"`
	Region          string        `yaml:"region"            env:"STORAGE_REGION"            env-default:"auto"`
	Bucket          string        `yaml:"bucket"            env:"STORAGE_BUCKET"            env-required:"true"`
	AccessKeyID     string        `yaml:"access_key_id"     env:"STORAGE_ACCESS_KEY_ID"     env-required:"true"`
	SecretAccessKey string        `yaml:"secret_access_key" env:"STORAGE_SECRET_ACCESS_KEY" env-required:"true"`
	PresignTTL      time.Duration `yaml:"presign_ttl"       env:"STORAGE_PRESIGN_TTL"       env-default:"15m"`
}

// RouterConfig holds AI-router dispatch settings.
type RouterConfig struct {
	EmbeddingsPrimary  string `yaml:"embeddings_primary"  env:"ROUTER_EMBEDDINGS_PRIMARY"  env-default:"OPENAI"`
	EmbeddingsFallback string `yaml:"embeddings_fallback" env:"ROUTER_EMBEDDINGS_FALLBACK" env-default:"COHERE"`
	GenerationPrimary  string `yaml:"generation_primary"  env:"ROUTER_GENERATION_PRIMARY"  env-default:"OPENAI"`
	GenerationFallback string `yaml:"generation_fallback" env:"ROUTER_GENERATION_FALLBACK"`
	ImageEditPrimary   string `yaml:"image_edit_primary"  env:"ROUTER_IMAGE_EDIT_PRIMARY"  env-default:"STABILITY"`
	ImageEditFallback  string `yaml:"image_edit_fallback" env:"ROUTER_IMAGE_EDIT_FALLBACK" env-default:"OPENAI"`

	// EmbeddingDim is the fixed dimension callers always receive; provider
	// output is zero-padded or truncated to match.
	EmbeddingDim int `yaml:"embedding_dim" env:"ROUTER_EMBEDDING_DIM" env-default:"1024"`

	// FailureThreshold is the number of consecutive failures after which a
	// provider is considered unhealthy for Cooldown.
	FailureThreshold int           `yaml:"failure_threshold" env:"ROUTER_FAILURE_THRESHOLD" env-default:"3"`
	Cooldown         time.Duration `yaml:"cooldown"          env:"ROUTER_COOLDOWN"          env-default:"30s"`
}

// OpenAIConfig holds OpenAI client settings.
type OpenAIConfig struct {
	APIKey         string        `yaml:"api_key"         env:"OPENAI_API_KEY"`
	BaseURL        string        `yaml:"base_url"        env:"OPENAI_BASE_URL"        env-default:"https://api.openai.com"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"OPENAI_REQUEST_TIMEOUT" env-default:"30s"`
	RatePerSecond  float64       `yaml:"rate_per_second" env:"OPENAI_RATE_PER_SECOND" env-default:"10"`
	RateBurst      int           `yaml:"rate_burst"      env:"OPENAI_RATE_BURST"      env-default:"20"`
}

// CohereConfig holds Cohere client settings.
type CohereConfig struct {
	APIKey         string        `yaml:"api_key"         env:"COHERE_API_KEY"`
	BaseURL        string        `yaml:"base_url"        env:"COHERE_BASE_URL"        env-default:"https://api.cohere.com"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"COHERE_REQUEST_TIMEOUT" env-default:"30s"`
	RatePerSecond  float64       `yaml:"rate_per_second" env:"COHERE_RATE_PER_SECOND" env-default:"10"`
	RateBurst      int           `yaml:"rate_burst"      env:"COHERE_RATE_BURST"      env-default:"20"`
}

// StabilityConfig holds Stability AI client settings.
type StabilityConfig struct {
	APIKey         string        `yaml:"api_key"         env:"STABILITY_API_KEY"`
	BaseURL        string        `yaml:"base_url"        env:"STABILITY_BASE_URL"        env-default:"https://api.stability.ai"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"STABILITY_REQUEST_TIMEOUT" env-default:"120s"`
	RatePerSecond  float64       `yaml:"rate_per_second" env:"STABILITY_RATE_PER_SECOND" env-default:"2"`
	RateBurst      int           `yaml:"rate_burst"      env:"STABILITY_RATE_BURST"      env-default:"5"`
}

// ProvidersConfig holds settings for all vendor clients plus the cost table
// used to attribute spend per call.
type ProvidersConfig struct {
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Cohere    CohereConfig    `yaml:"cohere"`
	Stability StabilityConfig `yaml:"stability"`

	// Cost table, in USD.
	OpenAIEmbedPer1K     float64 `yaml:"openai_embed_per_1k"     env:"COST_OPENAI_EMBED_PER_1K"     env-default:"0.00002"`
	OpenAIGenPer1K       float64 `yaml:"openai_gen_per_1k"       env:"COST_OPENAI_GEN_PER_1K"       env-default:"0.002"`
	OpenAIImageEditFlat  float64 `yaml:"openai_image_edit_flat"  env:"COST_OPENAI_IMAGE_EDIT_FLAT"  env-default:"0.02"`
	CohereEmbedPer1K     float64 `yaml:"cohere_embed_per_1k"     env:"COST_COHERE_EMBED_PER_1K"     env-default:"0.0001"`
	StabilityEditPerCall float64 `yaml:"stability_edit_per_call" env:"COST_STABILITY_EDIT_PER_CALL" env-default:"0.03"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
