// Package config handles loading and validation of application configuration
// from environment variables and optional configuration files.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"github.com/jalanjalan/jalanjalan-backend/types"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"environment"`
	Port           string      `mapstructure:"port"`
	AllowedOrigins []string    `mapstructure:"allowed_origins"`
	Version        string      `mapstructure:"version"`
}

// DatabaseConfig holds PostgreSQL connection details for the POI catalogue
// and bill store.
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name"`
	SSLMode      string `mapstructure:"ssl_mode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// ConnString returns a keyword/value pgx connection string.
func (c *DatabaseConfig) ConnString() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslmode)
}

// MigrateURL returns the pgx5:// connection URL golang-migrate expects.
func (c *DatabaseConfig) MigrateURL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("pgx5://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User), url.QueryEscape(c.Password),
		c.Host, c.Port, c.Name, sslmode)
}

// RedisConfig holds Redis connection details for the trip blob store and the
// POI pool cache.
type RedisConfig struct {
	Address         string `mapstructure:"address"`
	Password        string `mapstructure:"password"`
	DB              int    `mapstructure:"db"`
	PoolCacheTTLMin int    `mapstructure:"pool_cache_ttl_min"`
}

// AnchorConfig is one region-center coordinate the day-plan builder starts
// its nearest-neighbor walk from.
type AnchorConfig struct {
	Region string  `mapstructure:"region"`
	Lat    float64 `mapstructure:"lat"`
	Lng    float64 `mapstructure:"lng"`
}

// TransportLegConfig is the quoted cost and duration for one synthetic
// transport leg, keyed by transport mode.
type TransportLegConfig struct {
	Cost            float64 `mapstructure:"cost"`
	DurationMinutes int     `mapstructure:"duration_minutes"`
}

// PlannerConfig holds the tunables of the planning engine. The figures are
// configuration, not part of the algorithms' contracts.
type PlannerConfig struct {
	Anchors       []AnchorConfig                `mapstructure:"anchors"`
	TransportLegs map[string]TransportLegConfig `mapstructure:"transport_legs"`
}

// AnchorTable converts the anchor list into the lookup the builder takes.
func (p *PlannerConfig) AnchorTable() map[string]types.Coordinate {
	table := make(map[string]types.Coordinate, len(p.Anchors))
	for _, a := range p.Anchors {
		table[a.Region] = types.Coordinate{Lat: a.Lat, Lng: a.Lng}
	}
	return table
}

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Planner  PlannerConfig  `mapstructure:"planner"`
}

// LoadConfig reads configuration from config.yaml (if present) and the
// environment, applies defaults, and validates the result. Environment
// variables use the SERVER_PORT / DATABASE_HOST naming scheme.
func LoadConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; defaults plus env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints that viper cannot express.
func (c *Config) Validate() error {
	if c.Server.Environment != EnvDevelopment && c.Server.Environment != EnvProduction {
		return fmt.Errorf("unknown environment %q", c.Server.Environment)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	for mode := range c.Planner.TransportLegs {
		if !types.TransportMode(mode).IsValid() {
			return fmt.Errorf("unknown transport mode %q in planner.transport_legs", mode)
		}
	}
	return nil
}

// TransportLegTable converts the configured legs into the lookup the
// assembler takes.
func (c *Config) TransportLegTable() map[types.TransportMode]TransportLegConfig {
	table := make(map[types.TransportMode]TransportLegConfig, len(c.Planner.TransportLegs))
	for mode, leg := range c.Planner.TransportLegs {
		table[types.TransportMode(mode)] = leg
	}
	return table
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.environment", string(EnvDevelopment))
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.version", "dev")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "jalanjalan")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 10)

	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_cache_ttl_min", 15)

	// Region-center anchors for the nearest-neighbor walk. Regions not
	// listed here fall back to the first matching POI's coordinates.
	v.SetDefault("planner.anchors", []map[string]interface{}{
		{"region": "Kuala Lumpur", "lat": 3.1340, "lng": 101.6869}, // KL Sentral
		{"region": "Penang", "lat": 5.4141, "lng": 100.3288},       // Komtar
		{"region": "Johor", "lat": 1.4627, "lng": 103.7644},        // JB Sentral
		{"region": "Malacca", "lat": 2.1944, "lng": 102.2491},      // Stadthuys
		{"region": "Langkawi", "lat": 6.3088, "lng": 99.8432},      // Kuah Jetty
	})

	v.SetDefault("planner.transport_legs", map[string]map[string]interface{}{
		"OWN":    {"cost": 5.0, "duration_minutes": 20},
		"PUBLIC": {"cost": 15.0, "duration_minutes": 35},
	})
}
