package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret       string `env:"JWT_SECRET"`
	JWTAlgorithm    string `env:"JWT_ALGORITHM,     default=HS256"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES, default=30"`

	Store StoreConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// StoreConfig selects the credential store backend.
type StoreConfig struct {
	Driver   string `env:"USER_STORE,     default=file"`
	DataFile string `env:"USER_DATA_FILE, default=user_data.json"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_directory"`
}

type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED,       default=false"`
	Addr     string        `env:"REDIS_ADDR,          default=localhost:6379"`
	DB       int           `env:"REDIS_DB,            default=0"`
	CacheTTL time.Duration `env:"DIRECTORY_CACHE_TTL, default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
