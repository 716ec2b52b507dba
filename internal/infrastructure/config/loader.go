package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "CF"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads the configuration of the environment named by CF_ENV
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		return nil, err
	}
	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads <env>.yaml from the first path containing it, then applies
// defaults and CF_ environment overrides
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := processEnvOverrides(v); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found. A missing file is not an error.
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return nil
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.sqlitePath", "crowdfund.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 15)
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.slowQueryThreshold", 200)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)
	v.SetDefault("database.poolMonitorPeriod", 0)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.file.path", "logs/crowdfund.log")
	v.SetDefault("logger.file.maxSizeMB", 100)
	v.SetDefault("logger.file.maxBackups", 5)
	v.SetDefault("logger.file.maxAgeDays", 30)
	v.SetDefault("logger.file.compress", true)

	v.SetDefault("funding.queueBuffer", 64)
	v.SetDefault("funding.queueIdleTimeout", 60)
	v.SetDefault("funding.maxConflictRetries", 3)
	v.SetDefault("funding.retryBackoff", 20)

	v.SetDefault("identity.tokenTtl", 60)
	v.SetDefault("identity.tokenLeeway", 30)
	v.SetDefault("identity.cookieName", "sid")
	v.SetDefault("identity.cookieSecure", false)
	v.SetDefault("identity.sessionTtl", 168)
	v.SetDefault("identity.bcryptCost", 10)

	v.SetDefault("rateLimit.generalLimit", 300)
	v.SetDefault("rateLimit.generalPeriod", 60)
	v.SetDefault("rateLimit.loginLimit", 10)
	v.SetDefault("rateLimit.loginPeriod", 60)

	v.SetDefault("scheduler.sessionCleanupInterval", 60)
	v.SetDefault("scheduler.jobTimeout", 30)

	v.SetDefault("seed.enabled", false)
	v.SetDefault("cors.allowedOrigins", []string{})
}

// getEnvironment determines the environment from CF_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides applies the explicitly named environment variables.
// They take precedence over the config file.
func processEnvOverrides(v *viper.Viper) error {
	strOverrides := map[string]string{
		"DB_DRIVER":           "database.driver",
		"DB_HOST":             "database.host",
		"DB_PORT":             "database.port",
		"DB_USERNAME":         "database.username",
		"DB_PASSWORD":         "database.password",
		"DB_NAME":             "database.database",
		"DB_SSL_MODE":         "database.sslMode",
		"DB_SQLITE_PATH":      "database.sqlitePath",
		"SERVER_HOST":         "server.host",
		"LOGGER_LEVEL":        "logger.level",
		"LOGGER_OUTPUT":       "logger.output",
		"IDENTITY_JWT_SECRET": "identity.jwtSecret",
		"IDENTITY_ISSUER":     "identity.issuer",
		"IDENTITY_COOKIE":     "identity.cookieName",
	}
	for name, key := range strOverrides {
		if value := os.Getenv(EnvPrefix + "_" + name); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"SERVER_PORT":                   "server.port",
		"DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"DB_RETRY_ATTEMPTS":             "database.retryAttempts",
		"FUNDING_MAX_CONFLICT_RETRIES":  "funding.maxConflictRetries",
		"FUNDING_QUEUE_BUFFER":          "funding.queueBuffer",
		"RATE_LIMIT_GENERAL":            "rateLimit.generalLimit",
		"RATE_LIMIT_LOGIN":              "rateLimit.loginLimit",
		"SCHEDULER_SESSION_CLEANUP_MIN": "scheduler.sessionCleanupInterval",
	}
	for name, key := range intOverrides {
		value, ok, err := getEnvInt(EnvPrefix + "_" + name)
		if err != nil {
			return err
		}
		if ok {
			v.Set(key, value)
		}
	}

	boolOverrides := map[string]string{
		"SEED_ENABLED":           "seed.enabled",
		"IDENTITY_COOKIE_SECURE": "identity.cookieSecure",
	}
	for name, key := range boolOverrides {
		raw := os.Getenv(EnvPrefix + "_" + name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s_%s must be a boolean: %w", EnvPrefix, name, err)
		}
		v.Set(key, value)
	}

	if origins := os.Getenv(EnvPrefix + "_CORS_ALLOWED_ORIGINS"); origins != "" {
		var list []string
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				list = append(list, origin)
			}
		}
		v.Set("cors.allowedOrigins", list)
	}

	return nil
}

// getEnvInt reads an integer environment variable. ok is false when it is unset.
func getEnvInt(name string) (value int, ok bool, err error) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false, nil
	}
	value, err = strconv.Atoi(raw)
	if err != nil {
		return 0, false, errors.Join(fmt.Errorf("%s must be an integer", name), err)
	}
	return value, true, nil
}

// processDurations converts the integer unit counts decoded into time.Duration fields
func processDurations(config *Config) {
	seconds := []*time.Duration{
		&config.Server.ReadTimeout,
		&config.Server.WriteTimeout,
		&config.Server.IdleTimeout,
		&config.Server.ReadHeaderTimeout,
		&config.Server.ShutdownTimeout,
		&config.Database.QueryTimeout,
		&config.Database.RetryDelay,
		&config.Database.PoolMonitorPeriod,
		&config.Funding.QueueIdleTimeout,
		&config.Identity.TokenLeeway,
		&config.RateLimit.GeneralPeriod,
		&config.RateLimit.LoginPeriod,
		&config.Scheduler.JobTimeout,
	}
	for _, d := range seconds {
		*d *= time.Second
	}

	minutes := []*time.Duration{
		&config.Database.ConnMaxLifetime,
		&config.Database.ConnMaxIdleTime,
		&config.Identity.TokenTTL,
		&config.Scheduler.SessionCleanupInterval,
	}
	for _, d := range minutes {
		*d *= time.Minute
	}

	config.Database.SlowQueryThreshold *= time.Millisecond
	config.Funding.RetryBackoff *= time.Millisecond
	config.Identity.SessionTTL *= time.Hour
}
