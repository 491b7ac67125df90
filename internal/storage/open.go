package storage

import (
	"fmt"

	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/common/config"
)

// Open builds the KV backend selected by the configuration.
func Open(cfg *config.Config) (KV, error) {
	switch cfg.Storage.Backend {
	case "", "file":
		return NewFile(cfg.Storage.Dir)
	case "memory":
		return NewMemory(), nil
	case "redis":
		return NewRedis(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.Storage.Prefix), nil
	case "mysql":
		return NewMySQL(
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Database,
			cfg.Database.MaxIdle,
			cfg.Database.MaxOpen,
		)
	case "mongo":
		return NewMongo(cfg.Mongo.Host), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
