package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr       string        `yaml:"http_addr" json:"httpAddr"`
	RoomTTL        time.Duration `yaml:"room_ttl" json:"roomTtl"`
	SweepInterval  time.Duration `yaml:"sweep_interval" json:"sweepInterval"`
	AllowedOrigins []string      `yaml:"allowed_origins" json:"allowedOrigins"`
	LogLevel       string        `yaml:"log_level" json:"logLevel"`
	LogFormat      string        `yaml:"log_format" json:"logFormat"`
}

func Default() Config {
	return Config{
		HTTPAddr:       ":3001",
		RoomTTL:        30 * time.Minute,
		SweepInterval:  5 * time.Minute,
		AllowedOrigins: []string{"*"},
		LogLevel:       "info",
		LogFormat:      "console",
	}
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getenvList(key string, def []string) []string {
	v := getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Load reads defaults, then .env, then the YAML file named by
// CHECKERS_CONFIG, then plain environment variables.
func Load() (Config, error) {
	return LoadFrom("")
}

// LoadFrom is Load with an explicit YAML path taking precedence over
// CHECKERS_CONFIG. An empty path means none was given.
func LoadFrom(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path == "" {
		path = getenv("CHECKERS_CONFIG")
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()
	return cfg, cfg.Validate()
}

// LoadFile overlays the YAML document at path; absent keys keep their value.
func (c *Config) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if port := getenv("PORT"); port != "" {
		c.HTTPAddr = ":" + port
	}
	if addr := getenv("HTTP_ADDR"); addr != "" {
		c.HTTPAddr = addr
	}
	c.RoomTTL = getenvDuration("ROOM_TTL", c.RoomTTL)
	c.SweepInterval = getenvDuration("SWEEP_INTERVAL", c.SweepInterval)
	c.AllowedOrigins = getenvList("ALLOWED_ORIGINS", c.AllowedOrigins)
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}

func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return errors.New("http address is required")
	}
	if c.RoomTTL <= 0 {
		return fmt.Errorf("room ttl must be positive, got %s", c.RoomTTL)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %s", c.SweepInterval)
	}
	return nil
}

// AllowAllOrigins reports whether the origin list contains the wildcard.
func (c Config) AllowAllOrigins() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}
