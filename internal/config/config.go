package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Auth gate modes.
const (
	AuthJWT    = "jwt"    // bearer token must be a valid, unexpired JWT
	AuthBearer = "bearer" // any "Bearer <token>" header passes
	AuthOff    = "off"    // no gate
)

type Config struct {
	Addr    string        `yaml:"addr"`
	Auth    AuthConfig    `yaml:"auth"`
	Routes  RoutesConfig  `yaml:"routes"`
	Store   StoreConfig   `yaml:"store"`
	Seed    SeedConfig    `yaml:"seed"`
	Logging LoggingConfig `yaml:"logging"`
}

type AuthConfig struct {
	Mode            string `yaml:"mode"`
	JWTSecret       string `yaml:"jwt_secret"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
}

// RoutesConfig switches the optional route families. The flat
// /accommodations, /rooms, /bookings, /users and /sessions routes are
// always mounted.
type RoutesConfig struct {
	Nested      bool `yaml:"nested"`       // /hotels and /hotels/:hotelId/rooms
	AuthAliases bool `yaml:"auth_aliases"` // /auth/register, /auth/login, /auth/me
}

type StoreConfig struct {
	ValidateParents bool `yaml:"validate_parents"`
}

type SeedConfig struct {
	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		Addr: ":3000",
		Auth: AuthConfig{
			Mode:            AuthJWT,
			JWTSecret:       "change-me-in-prod",
			TokenTTLMinutes: 60,
		},
		Routes:  RoutesConfig{Nested: true, AuthAliases: true},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load starts from Default, applies the YAML file named by CONFIG_FILE when
// set, then lets environment variables override individual keys.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Addr = getenv("ADDR", c.Addr)
	if port := os.Getenv("PORT"); port != "" && os.Getenv("ADDR") == "" {
		c.Addr = ":" + port
	}
	c.Auth.Mode = strings.ToLower(getenv("AUTH_MODE", c.Auth.Mode))
	c.Auth.JWTSecret = getenv("JWT_SECRET", c.Auth.JWTSecret)
	c.Auth.TokenTTLMinutes = atoi(os.Getenv("TOKEN_TTL_MINUTES"), c.Auth.TokenTTLMinutes)
	c.Routes.Nested = boolenv("NESTED_ROUTES", c.Routes.Nested)
	c.Routes.AuthAliases = boolenv("AUTH_ALIASES", c.Routes.AuthAliases)
	c.Store.ValidateParents = boolenv("VALIDATE_PARENTS", c.Store.ValidateParents)
	c.Seed.AdminEmail = getenv("ADMIN_DEFAULT_EMAIL", c.Seed.AdminEmail)
	c.Seed.AdminPassword = getenv("ADMIN_DEFAULT_PASSWORD", c.Seed.AdminPassword)
	c.Logging.Level = getenv("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getenv("LOG_FORMAT", c.Logging.Format)
}

func (c Config) Validate() error {
	switch c.Auth.Mode {
	case AuthJWT, AuthBearer, AuthOff:
	default:
		return fmt.Errorf("config: unknown auth mode %q", c.Auth.Mode)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: jwt secret must not be empty")
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		return fmt.Errorf("config: token ttl must be positive, got %d", c.Auth.TokenTTLMinutes)
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

func boolenv(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
