package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		DSN string // SQLite path, or "memory" for in-memory
	}
	Mongo struct {
		URI      string // empty disables the document-store fallback tier
		Database string
	}
	Redis struct {
		Addr string
	}
	Battery struct {
		Path string // empty uses the embedded battery
	}
}

// Load reads configuration from an optional config.yaml plus environment
// variables (SERVER_PORT, DATABASE_DSN, MONGO_URI, REDIS_ADDR, BATTERY_PATH).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("server.port", "8080")
	v.SetDefault("database.dsn", "bizbalance.db")
	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "bizbalance")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("battery.path", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Println("[Config] no config.yaml found, using env and defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
