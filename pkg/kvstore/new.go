package kvstore

import "fmt"

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

// Config selects and configures a backend.
type Config struct {
	Driver     string
	FileDir    string
	Redis      RedisConfig
	SQLitePath string
}

// New builds the Store named by cfg.Driver.
func New(cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		return NewFile(cfg.FileDir)
	case DriverRedis:
		return NewRedis(cfg.Redis), nil
	case DriverSQLite:
		return NewSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
