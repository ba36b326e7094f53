package config

const (
	EnvPrefix = "FRESHKEEP"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv       = "FRESHKEEP_APP_ENV"
	EnvPort         = "FRESHKEEP_APP_PORT"
	EnvDBDSN        = "FRESHKEEP_DB_DSN"
	EnvDBSQLitePath = "FRESHKEEP_DB_SQLITE_PATH"
	EnvRedisURL     = "FRESHKEEP_REDIS_URL"
	EnvGCPProjectID = "FRESHKEEP_GCP_PROJECT_ID"
	EnvAlertSub     = "FRESHKEEP_PUBSUB_ALERT_SUBSCRIPTION"
	EnvSpeechSub    = "FRESHKEEP_PUBSUB_SPEECH_SUBSCRIPTION"
)
