package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr      string        `yaml:"http_addr" json:"httpAddr"`
	LogLevel      string        `yaml:"log_level" json:"logLevel"`
	LogDev        bool          `yaml:"log_dev" json:"logDev"`
	MaxRooms      int           `yaml:"max_rooms" json:"maxRooms"`
	BotName       string        `yaml:"bot_name" json:"botName"`
	RemoteURL     string        `yaml:"remote_url" json:"remoteUrl"`
	RemoteTimeout time.Duration `yaml:"remote_timeout" json:"remoteTimeout"`
	AllowOrigin   string        `yaml:"ws_allow_origin" json:"wsAllowOrigin"`
}

func Default() Config {
	return Config{
		HTTPAddr:      ":8080",
		LogLevel:      "info",
		MaxRooms:      1024,
		BotName:       "robot",
		RemoteURL:     "https://python.gel.ulaval.ca/quoridor/api/",
		RemoteTimeout: 10 * time.Second,
		AllowOrigin:   "*",
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// Load reads .env (when present), then the YAML file named by
// QUORIDOR_CONFIG, then the environment. Later sources win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("QUORIDOR_CONFIG"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogDev = getenvBool("LOG_DEV", cfg.LogDev)
	cfg.MaxRooms = getenvInt("MAX_ROOMS", cfg.MaxRooms)
	cfg.BotName = getenv("BOT_NAME", cfg.BotName)
	cfg.RemoteURL = getenv("REMOTE_URL", cfg.RemoteURL)
	cfg.RemoteTimeout = getenvDuration("REMOTE_TIMEOUT", cfg.RemoteTimeout)
	cfg.AllowOrigin = getenv("WS_ALLOW_ORIGIN", cfg.AllowOrigin)

	if cfg.MaxRooms <= 0 {
		return cfg, fmt.Errorf("max rooms must be positive, got %d", cfg.MaxRooms)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
