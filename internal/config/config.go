package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/digitalmuseum/archive-api/internal/logger"
	"github.com/digitalmuseum/archive-api/internal/types"
	"github.com/digitalmuseum/archive-api/internal/validator"
)

// Identity is one entry of the fixed login registry. The config is the
// authoritative list of accounts; secrets are stored as argon2id
// hashes produced by `archivectl hash`.
type Identity struct {
	Avatar     *string    `mapstructure:"avatar"      json:"avatar,omitempty"`
	ID         string     `mapstructure:"id"          json:"id"               validate:"required"`
	Email      string     `mapstructure:"email"       json:"email"            validate:"required,email"`
	Name       string     `mapstructure:"name"        json:"name"             validate:"required"`
	Role       types.Role `mapstructure:"role"        json:"role"             validate:"required,role"`
	SecretHash string     `mapstructure:"secret_hash" json:"-"                validate:"required"`
}

type SlogConfig struct {
	Level int `mapstructure:"level"`
}

type LoggingConfig struct {
	App     SlogConfig `mapstructure:"app"`
	UseOTLP bool       `mapstructure:"use_otlp"`
}

type SessionConfig struct {
	SigningKey string        `mapstructure:"signing_key" validate:"required"`
	TTL        time.Duration `mapstructure:"ttl"         validate:"required"`
}

type RateLimitConfig struct {
	LoginPerSecond float64 `mapstructure:"login_per_second"`
	LoginBurst     int     `mapstructure:"login_burst"`
}

// See archiveapi.yaml for an example config
type Config struct {
	Logging              *LoggingConfig   `mapstructure:"logging"                validate:"required"`
	Session              *SessionConfig   `mapstructure:"session"                validate:"required"`
	RateLimit            *RateLimitConfig `mapstructure:"ratelimit"`
	ListenAddress        string           `mapstructure:"listen_address"         validate:"required"`
	Identities           []Identity       `mapstructure:"identities"             validate:"required,dive"`
	GracefulShutdownSecs int64            `mapstructure:"graceful_shutdown_secs"`
}

const (
	AppLogLevel          string = "logging.app.level"
	EnvPrefix            string = "archiveapi"
	GracefulShutdownSecs string = "graceful_shutdown_secs"
	ListenAddress        string = "listen_address"
	LoginBurst           string = "ratelimit.login_burst"
	LoginPerSecond       string = "ratelimit.login_per_second"
	SessionSigningKey    string = "session.signing_key" // #nosec
	SessionTTL           string = "session.ttl"
	UseOTLP              string = "logging.use_otlp"
)

var configReady = false
var config Config

func GetConfig() (*Config, error) {
	if configReady {
		logger.Logger.Debug("returning already-loaded config")
		return &config, nil
	}
	logger.Logger.Info("loading config")

	v := viper.New()

	v.SetConfigName("archiveapi")

	v.AddConfigPath("/etc/archiveapi/")
	v.AddConfigPath(".")

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.AutomaticEnv()

	// workaround for https://github.com/spf13/viper/issues/761
	// bind env vars explicitly so they unmarshal into the nested struct
	err := v.BindEnv(SessionSigningKey)
	if err != nil {
		return nil, err
	}

	v.SetDefault(ListenAddress, "[::]:1323")
	v.SetDefault(AppLogLevel, int(slog.LevelInfo))
	v.SetDefault(UseOTLP, false)
	v.SetDefault(GracefulShutdownSecs, 10)
	v.SetDefault(SessionTTL, (12 * time.Hour).String())
	v.SetDefault(LoginPerSecond, float64(1))
	v.SetDefault(LoginBurst, 5)

	err = v.ReadInConfig()
	if err != nil {
		// ignore config file not found to allow pure env config
		if _, ok := err.(*viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	err = v.Unmarshal(&config)
	if err != nil {
		configReady = false
		return nil, err
	}

	valid := validator.Create()
	err = valid.Validate(&config)
	if err != nil {
		configReady = false
		return nil, err
	}

	configReady = true
	return &config, nil
}
