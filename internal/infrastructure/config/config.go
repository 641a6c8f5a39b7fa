package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Platform targets with distinct default backend hosts. A browser
// build reaches the loopback host, an emulator reaches the host
// machine through its virtual address, and a physical device needs the
// development machine's LAN address.
const (
	PlatformWeb      = "web"
	PlatformEmulator = "emulator"
	PlatformDevice   = "device"
)

type Config struct {
	// BaseURL overrides every platform default when set.
	BaseURL  string `env:"HOMEFIX_API_URL"`
	Platform string `env:"HOMEFIX_PLATFORM, default=web"`
	LANHost  string `env:"HOMEFIX_LAN_HOST, default=192.168.0.10:8080"`
	LogLevel string `env:"LOG_LEVEL,        default=info"`

	Storage StorageConfig
	Stub    StubConfig
}

type StorageConfig struct {
	// Backend selects the session persistence adapter: file, memory
	// or redis.
	Backend string `env:"HOMEFIX_STORAGE,      default=file"`
	Path    string `env:"HOMEFIX_STORAGE_PATH"`

	RedisAddr string `env:"HOMEFIX_REDIS_ADDR, default=localhost:6379"`
	RedisDB   int    `env:"HOMEFIX_REDIS_DB,   default=0"`
}

// StubConfig drives the development stub backend.
type StubConfig struct {
	Port      string `env:"PORT,       default=8080"`
	JWTSecret string `env:"JWT_SECRET, default=dev-only-secret"`
}

// Load reads configuration from environment variables using
// go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// ResolveBaseURL returns the backend URL for the configured platform,
// honouring an explicit override first.
func (c *Config) ResolveBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	switch c.Platform {
	case PlatformEmulator:
		return "http://10.0.2.2:8080"
	case PlatformDevice:
		return "http://" + c.LANHost
	default:
		return "http://localhost:8080"
	}
}
