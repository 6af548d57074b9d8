package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Log        LogConfig
	HTTP       HTTPConfig
	Printing   PrintingConfig
	Restaurant RestaurantConfig
	Ordering   OrderingConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// PrintingConfig holds the print pipeline settings
type PrintingConfig struct {
	// WidthProfile selects the receipt stock: NARROW (58mm) or WIDE (80mm)
	WidthProfile string
	// TicketPrinter and BillPrinter are spooler queue names per document kind
	TicketPrinter string
	BillPrinter   string
	// TicketDevice and BillDevice are raw device nodes for the embedded channel
	TicketDevice string
	BillDevice   string
	// SpoolDir receives embedded-channel jobs when no device is configured
	SpoolDir string
	// SpoolCommand is the spool binary, lp by default
	SpoolCommand string
	// Channel timeouts
	SilentTimeout   time.Duration
	VisibleTimeout  time.Duration
	VisibleSettle   time.Duration
	EmbeddedTimeout time.Duration
	// ChromeRemoteURL points the visible channel at an existing browser
	ChromeRemoteURL string
	ChromeHeadless  bool
	ChromeNoSandbox bool
	// Abbreviations maps dictionary words to their short forms for the
	// name-column abbreviator
	Abbreviations map[string]string
	// BillPrefix seeds bill numbers, e.g. UDP-20260823-1
	BillPrefix string
}

// RestaurantConfig holds the identity block printed on bills
type RestaurantConfig struct {
	Name         string
	AddressLines []string
	Phone        string
	GSTIN        string
	FSSAI        string
	Closing      string
}

// OrderingConfig holds pricing settings applied at order time
type OrderingConfig struct {
	// ServiceFeePercent is applied to the subtotal; zero disables the fee
	ServiceFeePercent float64
	// ParcelTiers maps add-on tier labels to per-unit charges
	ParcelTiers map[string]float64
}

// Load loads configuration from TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with POS_ prefix (e.g., POS_DATABASE_PASSWORD)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// no config file is fine, defaults and env vars apply
	}

	v.SetEnvPrefix("POS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
		Printing: PrintingConfig{
			WidthProfile:    v.GetString("printing.width_profile"),
			TicketPrinter:   v.GetString("printing.ticket_printer"),
			BillPrinter:     v.GetString("printing.bill_printer"),
			TicketDevice:    v.GetString("printing.ticket_device"),
			BillDevice:      v.GetString("printing.bill_device"),
			SpoolDir:        v.GetString("printing.spool_dir"),
			SpoolCommand:    v.GetString("printing.spool_command"),
			SilentTimeout:   v.GetDuration("printing.silent_timeout"),
			VisibleTimeout:  v.GetDuration("printing.visible_timeout"),
			VisibleSettle:   v.GetDuration("printing.visible_settle"),
			EmbeddedTimeout: v.GetDuration("printing.embedded_timeout"),
			ChromeRemoteURL: v.GetString("printing.chrome_remote_url"),
			ChromeHeadless:  v.GetBool("printing.chrome_headless"),
			ChromeNoSandbox: v.GetBool("printing.chrome_no_sandbox"),
			Abbreviations:   v.GetStringMapString("printing.abbreviations"),
			BillPrefix:      v.GetString("printing.bill_prefix"),
		},
		Restaurant: RestaurantConfig{
			Name:         v.GetString("restaurant.name"),
			AddressLines: v.GetStringSlice("restaurant.address_lines"),
			Phone:        v.GetString("restaurant.phone"),
			GSTIN:        v.GetString("restaurant.gstin"),
			FSSAI:        v.GetString("restaurant.fssai"),
			Closing:      v.GetString("restaurant.closing"),
		},
		Ordering: OrderingConfig{
			ServiceFeePercent: v.GetFloat64("ordering.service_fee_percent"),
			ParcelTiers:       parseParcelTiers(v.GetStringMapString("ordering.parcel_tiers")),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseParcelTiers(raw map[string]string) map[string]float64 {
	if len(raw) == 0 {
		return nil
	}
	tiers := make(map[string]float64, len(raw))
	for label, value := range raw {
		var charge float64
		if _, err := fmt.Sscanf(value, "%f", &charge); err == nil && charge >= 0 {
			tiers[label] = charge
		}
	}
	return tiers
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "pos-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "pos"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 30
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "X-Request-ID"}
	}
	if cfg.Printing.WidthProfile == "" {
		cfg.Printing.WidthProfile = "NARROW"
	}
	if cfg.Printing.SpoolCommand == "" {
		cfg.Printing.SpoolCommand = "lp"
	}
	if cfg.Printing.SilentTimeout == 0 {
		cfg.Printing.SilentTimeout = 8 * time.Second
	}
	if cfg.Printing.VisibleTimeout == 0 {
		cfg.Printing.VisibleTimeout = 20 * time.Second
	}
	if cfg.Printing.VisibleSettle == 0 {
		cfg.Printing.VisibleSettle = 2500 * time.Millisecond
	}
	if cfg.Printing.EmbeddedTimeout == 0 {
		cfg.Printing.EmbeddedTimeout = 5 * time.Second
	}
	if cfg.Printing.SpoolDir == "" {
		cfg.Printing.SpoolDir = "/var/spool/pos"
	}
	if cfg.Printing.BillPrefix == "" {
		cfg.Printing.BillPrefix = "BILL"
	}
	if cfg.Restaurant.Name == "" {
		cfg.Restaurant.Name = "Restaurant"
	}
	if cfg.Restaurant.Closing == "" {
		cfg.Restaurant.Closing = "Thank you, visit again!"
	}
	if cfg.Ordering.ParcelTiers == nil {
		cfg.Ordering.ParcelTiers = map[string]float64{
			"parcel":      10,
			"parcel-half": 5,
		}
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if c.Printing.WidthProfile != "NARROW" && c.Printing.WidthProfile != "WIDE" {
		return fmt.Errorf("printing.width_profile must be NARROW or WIDE, got %q", c.Printing.WidthProfile)
	}
	if c.Ordering.ServiceFeePercent < 0 || c.Ordering.ServiceFeePercent > 100 {
		return fmt.Errorf("ordering.service_fee_percent must be within [0,100], got %v", c.Ordering.ServiceFeePercent)
	}
	for label, charge := range c.Ordering.ParcelTiers {
		if charge < 0 {
			return fmt.Errorf("ordering.parcel_tiers[%s] cannot be negative", label)
		}
	}

	if c.App.Env == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Database.SSLMode == "disable" {
			return fmt.Errorf("database.sslmode cannot be 'disable' in production")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	return nil
}

// DSN returns the database connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Addr returns the host:port pair for the Redis connection
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
