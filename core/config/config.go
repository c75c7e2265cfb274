package config

import (
	"fmt"
	"sync"

	"friendsync-api/core/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string
	Port int
}

type AppConfig struct {
	LogLevel     string
	SeedDemoData bool
	// ReferenceDate optionally pins "today" (YYYY-MM-DD) for demo sessions;
	// empty means the server clock is used.
	ReferenceDate string
}

type Config struct {
	Server ServerConfig
	App    AppConfig
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads configuration from the environment (and a .env file if present)
// and stores it as the process-wide config.
func Load() (*Config, error) {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", constants.DefaultServerPort)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("REFERENCE_DATE", "")

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		App: AppConfig{
			LogLevel:      v.GetString("LOG_LEVEL"),
			SeedDemoData:  v.GetBool("SEED_DEMO_DATA"),
			ReferenceDate: v.GetString("REFERENCE_DATE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()

	return cfg, nil
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}

// GetSafe returns the loaded config and whether Load has been called
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		return nil, false
	}
	return instance, true
}
