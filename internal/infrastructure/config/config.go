package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Funding     FundingConfig   `mapstructure:"funding"`
	Identity    IdentityConfig  `mapstructure:"identity"`
	RateLimit   RateLimitConfig `mapstructure:"rateLimit"`
	Scheduler   SchedulerConfig `mapstructure:"scheduler"`
	Seed        SeedConfig      `mapstructure:"seed"`
	CORS        CORSConfig      `mapstructure:"cors"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver             string        `mapstructure:"driver"` // postgres | sqlite
	Host               string        `mapstructure:"host"`
	Port               string        `mapstructure:"port"`
	Username           string        `mapstructure:"username"`
	Password           string        `mapstructure:"password"`
	Database           string        `mapstructure:"database"`
	SSLMode            string        `mapstructure:"sslMode"`
	SQLitePath         string        `mapstructure:"sqlitePath"`
	MaxOpenConns       int           `mapstructure:"maxOpenConns"`
	MaxIdleConns       int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime    time.Duration `mapstructure:"connMaxLifetime"`    // minutes
	ConnMaxIdleTime    time.Duration `mapstructure:"connMaxIdleTime"`    // minutes
	QueryTimeout       time.Duration `mapstructure:"queryTimeout"`       // seconds
	SlowQueryThreshold time.Duration `mapstructure:"slowQueryThreshold"` // milliseconds
	RetryAttempts      int           `mapstructure:"retryAttempts"`
	RetryDelay         time.Duration `mapstructure:"retryDelay"`        // seconds
	PoolMonitorPeriod  time.Duration `mapstructure:"poolMonitorPeriod"` // seconds, 0 disables
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string        `mapstructure:"level"`
	Output string        `mapstructure:"output"` // stdout | file
	File   LogFileConfig `mapstructure:"file"`
}

// LogFileConfig configures the rotating log file used when output is file
type LogFileConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"maxSizeMB"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAgeDays"`
	Compress   bool   `mapstructure:"compress"`
}

// FundingConfig tunes the funding engine
type FundingConfig struct {
	QueueBuffer        int           `mapstructure:"queueBuffer"`
	QueueIdleTimeout   time.Duration `mapstructure:"queueIdleTimeout"` // seconds
	MaxConflictRetries int           `mapstructure:"maxConflictRetries"`
	RetryBackoff       time.Duration `mapstructure:"retryBackoff"` // milliseconds
}

// IdentityConfig contains caller identity and session settings
type IdentityConfig struct {
	JWTSecret    string        `mapstructure:"jwtSecret"`
	Issuer       string        `mapstructure:"issuer"`
	TokenTTL     time.Duration `mapstructure:"tokenTtl"`    // minutes
	TokenLeeway  time.Duration `mapstructure:"tokenLeeway"` // seconds
	CookieName   string        `mapstructure:"cookieName"`
	CookieSecure bool          `mapstructure:"cookieSecure"`
	CookieDomain string        `mapstructure:"cookieDomain"`
	SessionTTL   time.Duration `mapstructure:"sessionTtl"` // hours
	BcryptCost   int           `mapstructure:"bcryptCost"`
}

// RateLimitConfig contains per client ip request limits. A limit of 0 disables it.
type RateLimitConfig struct {
	GeneralLimit  int64         `mapstructure:"generalLimit"`
	GeneralPeriod time.Duration `mapstructure:"generalPeriod"` // seconds
	LoginLimit    int64         `mapstructure:"loginLimit"`
	LoginPeriod   time.Duration `mapstructure:"loginPeriod"` // seconds
}

// SchedulerConfig contains housekeeping job settings
type SchedulerConfig struct {
	SessionCleanupInterval time.Duration `mapstructure:"sessionCleanupInterval"` // minutes, 0 disables
	JobTimeout             time.Duration `mapstructure:"jobTimeout"`             // seconds
}

// SeedConfig lists demo accounts created on startup
type SeedConfig struct {
	Enabled   bool             `mapstructure:"enabled"`
	DemoUsers []DemoUserConfig `mapstructure:"demoUsers"`
}

// DemoUserConfig is one seeded demo account
type DemoUserConfig struct {
	ID        string `mapstructure:"id"`
	Email     string `mapstructure:"email"`
	FirstName string `mapstructure:"firstName"`
	LastName  string `mapstructure:"lastName"`
	Password  string `mapstructure:"password"`
}

// CORSConfig lists the browser origins allowed to call the API
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}
