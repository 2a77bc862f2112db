package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production        bool          `env:"PRODUCTION" envDefault:"false"`
	Port              string        `env:"PORT" envDefault:"80"`
	PostgresUrl       string        `env:"POSTGRES_URL" envDefault:""`
	RedisUrl          string        `env:"REDIS_URL" envDefault:"redis:6379"`
	ClientSecretPath  string        `env:"CLIENT_SECRET_PATH" envDefault:"secrets/client_secret.json"`
	ClientType        string        `env:"CLIENT_TYPE" envDefault:"web"`
	GoogleTokenPath   string        `env:"GOOGLE_TOKEN_PATH" envDefault:"secrets/token.json"`
	ClassifierURL     string        `env:"CLASSIFIER_URL" envDefault:""`
	SyncWindow        time.Duration `env:"SYNC_WINDOW" envDefault:"8760h"`
	SyncLockTTL       time.Duration `env:"SYNC_LOCK_TTL" envDefault:"5m"`
	RemoteCallTimeout time.Duration `env:"REMOTE_CALL_TIMEOUT" envDefault:"30s"`
	RemoteMaxRetries  int           `env:"REMOTE_MAX_RETRIES" envDefault:"3"`
	RemoteRetryDelay  time.Duration `env:"REMOTE_RETRY_DELAY" envDefault:"500ms"`
	PlanMaxAttempts   int           `env:"PLAN_MAX_ATTEMPTS" envDefault:"20"`
	WorkDayStart      int           `env:"WORK_DAY_START" envDefault:"10"`
	WorkDayEnd        int           `env:"WORK_DAY_END" envDefault:"17"`
	SessionsPerWeek   int           `env:"SESSIONS_PER_WEEK" envDefault:"2"`
}

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func RedisURL() string {
	return conf.RedisUrl
}

func ClientSecretPath() string {
	return conf.ClientSecretPath
}

func ClientType() string {
	return conf.ClientType
}

func GoogleTokenPath() string {
	return conf.GoogleTokenPath
}

func ClassifierURL() string {
	return conf.ClassifierURL
}

func SyncWindow() time.Duration {
	return conf.SyncWindow
}

func SyncLockTTL() time.Duration {
	return conf.SyncLockTTL
}

func RemoteCallTimeout() time.Duration {
	return conf.RemoteCallTimeout
}

func RemoteMaxRetries() int {
	return conf.RemoteMaxRetries
}

func RemoteRetryDelay() time.Duration {
	return conf.RemoteRetryDelay
}

func PlanMaxAttempts() int {
	return conf.PlanMaxAttempts
}

func WorkDayStart() int {
	return conf.WorkDayStart
}

func WorkDayEnd() int {
	return conf.WorkDayEnd
}

func SessionsPerWeek() int {
	return conf.SessionsPerWeek
}
