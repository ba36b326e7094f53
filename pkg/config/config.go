package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	Alerts       AlertsConfig
	Reminders    RemindersConfig
	Locale       LocaleConfig
	Worker       WorkerConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FRESHKEEP_APP_ENV" required:"true"`
	Port         string `envconfig:"FRESHKEEP_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FRESHKEEP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FRESHKEEP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"FRESHKEEP_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN        string `envconfig:"FRESHKEEP_DB_DSN"`
	SQLitePath string `envconfig:"FRESHKEEP_DB_SQLITE_PATH" default:"freshkeep.db"`

	MaxOpenConns    int           `envconfig:"FRESHKEEP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FRESHKEEP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FRESHKEEP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FRESHKEEP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db *DBConfig) validate(useSQLite bool) error {
	if useSQLite {
		if strings.TrimSpace(db.SQLitePath) == "" {
			return fmt.Errorf("%s is required when sqlite is enabled", EnvDBSQLitePath)
		}
		return nil
	}
	if strings.TrimSpace(db.DSN) == "" {
		return fmt.Errorf("%s is required", EnvDBDSN)
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"FRESHKEEP_REDIS_URL" required:"true"`
	Address      string        `envconfig:"FRESHKEEP_REDIS_ADDR"`
	Password     string        `envconfig:"FRESHKEEP_REDIS_PASSWORD"`
	DB           int           `envconfig:"FRESHKEEP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FRESHKEEP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FRESHKEEP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FRESHKEEP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FRESHKEEP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FRESHKEEP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"FRESHKEEP_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"FRESHKEEP_AUTO_MIGRATE" default:"false"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"FRESHKEEP_GCP_PROJECT_ID" required:"true"`
	CredentialsJSON        string `envconfig:"FRESHKEEP_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"FRESHKEEP_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	AlertTopic         string `envconfig:"FRESHKEEP_PUBSUB_ALERT_TOPIC" default:"fk-expiry-alerts"`
	AlertSubscription  string `envconfig:"FRESHKEEP_PUBSUB_ALERT_SUBSCRIPTION" required:"true"`
	SpeechTopic        string `envconfig:"FRESHKEEP_PUBSUB_SPEECH_TOPIC" default:"fk-speech-requests"`
	SpeechSubscription string `envconfig:"FRESHKEEP_PUBSUB_SPEECH_SUBSCRIPTION" required:"true"`
}

type AlertsConfig struct {
	ExpiryDayFireHour int `envconfig:"FRESHKEEP_ALERTS_EXPIRY_DAY_FIRE_HOUR" default:"9"`
	RetentionDays     int `envconfig:"FRESHKEEP_ALERTS_RETENTION_DAYS" default:"30"`
}

type RemindersConfig struct {
	// VoiceDelay is how long the trigger waits before publishing the speech
	// request, so the client's reminder transition settles first.
	VoiceDelay time.Duration `envconfig:"FRESHKEEP_REMINDERS_VOICE_DELAY" default:"500ms"`
}

type LocaleConfig struct {
	GeoBaseURL string        `envconfig:"FRESHKEEP_LOCALE_GEO_BASE_URL" default:"https://ipapi.co"`
	Timeout    time.Duration `envconfig:"FRESHKEEP_LOCALE_TIMEOUT" default:"5s"`
}

type WorkerConfig struct {
	DispatchInterval time.Duration `envconfig:"FRESHKEEP_WORKER_DISPATCH_INTERVAL" default:"1m"`
	CleanupInterval  time.Duration `envconfig:"FRESHKEEP_WORKER_CLEANUP_INTERVAL" default:"24h"`
}
