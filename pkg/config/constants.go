package config

const EnvPrefix = "SCRAPDASH"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAPIBaseURL        = "SCRAPDASH_API_BASE_URL"
	EnvAppEnv            = "SCRAPDASH_APP_ENV"
	EnvLogLevel          = "SCRAPDASH_LOG_LEVEL"
	EnvSessionBackend    = "SCRAPDASH_SESSION_BACKEND"
	EnvSessionPath       = "SCRAPDASH_SESSION_PATH"
	EnvSessionPassphrase = "SCRAPDASH_SESSION_PASSPHRASE"
	EnvRedisURL          = "SCRAPDASH_REDIS_URL"
)

const (
	SessionBackendFile   = "file"
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)
