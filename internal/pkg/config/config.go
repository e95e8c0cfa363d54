package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Config is read from the environment only. Connection details are required;
// everything a shopping centre deployment rarely changes has a default.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Pricing PricingConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"HTTP_READ_HEADER_TIMEOUT" default:"5s"`
	ShutdownTimeout   time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Australia/Sydney"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`

	// TxAttempts bounds how often a unit of work runs after serialization
	// failures and deadlocks.
	TxAttempts   int           `envconfig:"DB_TX_ATTEMPTS" default:"4"`
	TxRetryDelay time.Duration `envconfig:"DB_TX_RETRY_DELAY" default:"100ms"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Australia/Sydney"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"36000"` // 10*60*60
}

// PricingConfig drives date interpretation and the tax applied on top of
// calculated booking costs.
type PricingConfig struct {
	TimeZone       string          `envconfig:"PRICING_TIMEZONE" default:"Australia/Sydney"`
	GSTRate        decimal.Decimal `envconfig:"GST_RATE" default:"0.10"`
	MaxBookingDays int             `envconfig:"MAX_BOOKING_DAYS" default:"366"`
}

// Location falls back to UTC when the zone cannot be loaded; LoadConfig
// rejects such zones up front.
func (c PricingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c PricingConfig) validate() error {
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("invalid PRICING_TIMEZONE %q: %w", c.TimeZone, err)
	}
	if c.GSTRate.IsNegative() || c.GSTRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("GST_RATE must be between 0 and 1, got %s", c.GSTRate)
	}
	if c.MaxBookingDays < 1 {
		return fmt.Errorf("MAX_BOOKING_DAYS must be positive, got %d", c.MaxBookingDays)
	}
	return nil
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Pricing.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Australia/Sydney",
			MaxConns: 5,

			TxAttempts:   4,
			TxRetryDelay: 10 * time.Millisecond,
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "Australia/Sydney",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 36000,
		},
		Pricing: PricingConfig{
			TimeZone:       "Australia/Sydney",
			GSTRate:        decimal.RequireFromString("0.10"),
			MaxBookingDays: 366,
		},
	}
}
