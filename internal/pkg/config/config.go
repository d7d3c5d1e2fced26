package config

import (
	"fmt"
	"strings"
	"time"

	"hotel-kiosk/internal/domain/loyalty"
	"hotel-kiosk/internal/domain/pricing"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Store   StoreConfig
	Redis   RedisConfig
	Pricing PricingConfig
	Loyalty LoyaltyConfig
	Jobs    JobsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"hotel_kiosk"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
	// SeedRooms adds the default room inventory at startup, skipping numbers
	// that already exist.
	SeedRooms bool `envconfig:"STORE_SEED_ROOMS" default:"true"`
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Channel  string `envconfig:"REDIS_AVAILABILITY_CHANNEL" default:"hotel-kiosk:availability"`
}

type PricingConfig struct {
	TaxRate            decimal.Decimal `envconfig:"PRICING_TAX_RATE" default:"0.13"`
	Dynamic            bool            `envconfig:"PRICING_DYNAMIC" default:"false"`
	WeekdayMultiplier  decimal.Decimal `envconfig:"PRICING_WEEKDAY_MULTIPLIER" default:"1.0"`
	WeekendMultiplier  decimal.Decimal `envconfig:"PRICING_WEEKEND_MULTIPLIER" default:"1.2"`
	SeasonalMultiplier decimal.Decimal `envconfig:"PRICING_SEASONAL_MULTIPLIER" default:"1.5"`
	SeasonalPeriods    SeasonalPeriods `envconfig:"PRICING_SEASONAL_PERIODS"`
}

type LoyaltyConfig struct {
	EarningRate      decimal.Decimal `envconfig:"LOYALTY_EARNING_RATE" default:"1"`
	RedemptionValue  decimal.Decimal `envconfig:"LOYALTY_REDEMPTION_VALUE" default:"0.01"`
	MaxRedemption    int64           `envconfig:"LOYALTY_MAX_REDEMPTION" default:"10000"`
	MinRedemption    int64           `envconfig:"LOYALTY_MIN_REDEMPTION" default:"100"`
	WelcomeBonus     int64           `envconfig:"LOYALTY_WELCOME_BONUS" default:"500"`
	ExpirationMonths int             `envconfig:"LOYALTY_EXPIRATION_MONTHS" default:"0"`
}

type JobsConfig struct {
	// Standard five-field cron spec. Empty disables the sweep.
	LoyaltyExpiryCron string `envconfig:"JOBS_LOYALTY_EXPIRY_CRON" default:"0 3 * * *"`
}

// SeasonalPeriods decodes "Name:2026-12-20:2027-01-03,Other:..." into
// inclusive night ranges.
type SeasonalPeriods []pricing.SeasonalPeriod

func (s *SeasonalPeriods) Decode(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*s = nil
		return nil
	}

	var out SeasonalPeriods
	for _, entry := range strings.Split(value, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 3 {
			return fmt.Errorf("seasonal period %q: want name:start:end", entry)
		}
		start, err := time.Parse(time.DateOnly, parts[1])
		if err != nil {
			return fmt.Errorf("seasonal period %q: start: %w", entry, err)
		}
		end, err := time.Parse(time.DateOnly, parts[2])
		if err != nil {
			return fmt.Errorf("seasonal period %q: end: %w", entry, err)
		}
		p, err := pricing.NewSeasonalPeriod(parts[0], start, end)
		if err != nil {
			return fmt.Errorf("seasonal period %q: %w", entry, err)
		}
		out = append(out, p)
	}
	*s = out
	return nil
}

func (c PricingConfig) Domain() pricing.Configuration {
	return pricing.Configuration{
		WeekdayMultiplier:  c.WeekdayMultiplier,
		WeekendMultiplier:  c.WeekendMultiplier,
		SeasonalMultiplier: c.SeasonalMultiplier,
		SeasonalPeriods:    c.SeasonalPeriods,
		TaxRate:            c.TaxRate,
		Dynamic:            c.Dynamic,
	}
}

func (c LoyaltyConfig) Domain() loyalty.Config {
	return loyalty.Config{
		EarningRate:                 c.EarningRate,
		RedemptionValue:             c.RedemptionValue,
		MaxRedemptionPerReservation: c.MaxRedemption,
		MinRedemption:               c.MinRedemption,
		WelcomeBonus:                c.WelcomeBonus,
		ExpirationMonths:            c.ExpirationMonths,
	}
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
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.Password == "" {
			return fmt.Errorf("DB_USER and DB_PASSWORD are required with STORE_DRIVER=%s", StoreDriverPostgres)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Pricing.TaxRate.IsNegative() {
		return fmt.Errorf("PRICING_TAX_RATE must not be negative")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
		},
		Pricing: PricingConfig{
			TaxRate:            decimal.RequireFromString("0.13"),
			WeekdayMultiplier:  decimal.NewFromInt(1),
			WeekendMultiplier:  decimal.RequireFromString("1.2"),
			SeasonalMultiplier: decimal.RequireFromString("1.5"),
		},
		Loyalty: LoyaltyConfig{
			EarningRate:     decimal.NewFromInt(1),
			RedemptionValue: decimal.RequireFromString("0.01"),
			MaxRedemption:   10_000,
			MinRedemption:   100,
			WelcomeBonus:    500,
		},
	}
}
