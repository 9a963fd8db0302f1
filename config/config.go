package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Storage drivers accepted by storage.driver.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task list
	Storage  StorageConfig
	Timezone string

	// HTTP middleware
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig selects where the task snapshot is persisted.
type StorageConfig struct {
	Driver string
	Key    string
	File   FileStorageConfig
	Redis  RedisStorageConfig
	SQLite SQLiteStorageConfig
}

type FileStorageConfig struct {
	Dir string
}

type RedisStorageConfig struct {
	Addr     string
	Password string
	DB       int
}

type SQLiteStorageConfig struct {
	Path string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
	Burst   int
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/decidr/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(viper.GetString("storage.driver")))
	cfg.Storage.Key = viper.GetString("storage.key")
	cfg.Storage.File.Dir = viper.GetString("storage.file.dir")
	cfg.Storage.Redis.Addr = viper.GetString("storage.redis.addr")
	cfg.Storage.Redis.Password = expandEnvVar(viper.GetString("storage.redis.password"))
	cfg.Storage.Redis.DB = viper.GetInt("storage.redis.db")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Storage.Redis.Addr = redisAddr
	}
	cfg.Storage.SQLite.Path = viper.GetString("storage.sqlite.path")

	cfg.Timezone = viper.GetString("timezone")

	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (cfg *Config) Validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Storage.Key == "" {
		return fmt.Errorf("storage.key is required")
	}

	switch cfg.Storage.Driver {
	case StorageMemory:
	case StorageFile:
		if cfg.Storage.File.Dir == "" {
			return fmt.Errorf("storage.file.dir is required for the file driver")
		}
	case StorageRedis:
		if cfg.Storage.Redis.Addr == "" {
			return fmt.Errorf("storage.redis.addr is required for the redis driver")
		}
	case StorageSQLite:
		if cfg.Storage.SQLite.Path == "" {
			return fmt.Errorf("storage.sqlite.path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}

	if cfg.RateLimit.Enabled && cfg.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive when rate limiting is enabled")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.driver", StorageFile)
	viper.SetDefault("storage.key", "decidr_tasks")
	viper.SetDefault("storage.file.dir", "./data")
	viper.SetDefault("storage.redis.addr", "localhost:6379")
	viper.SetDefault("storage.redis.db", 0)
	viper.SetDefault("storage.sqlite.path", "./data/decidr.db")

	viper.SetDefault("timezone", "Local")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)
	viper.SetDefault("rate_limit.burst", 20)
}

// expandEnvVar resolves values written as ${NAME} from the environment.
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
