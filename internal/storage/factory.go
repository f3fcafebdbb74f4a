package storage

import (
	"fmt"
	"io"
	"os"

	"marketplace-client/internal/config"
	"marketplace-client/internal/db"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSealed   = "sealed"
	DriverPostgres = "postgres"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the storage selected by cfg.StorageDriver. The returned closer
// releases the database handle for the postgres driver.
func New(cfg *config.Config) (Storage, io.Closer, error) {
	switch cfg.StorageDriver {
	case DriverMemory:
		return NewMemory(), nopCloser{}, nil
	case DriverFile, "":
		return NewFile(cfg.StoragePath), nopCloser{}, nil
	case DriverSealed:
		s, err := NewSealedFile(cfg.StoragePath, cfg.StorageSecret)
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	case DriverPostgres:
		database, err := db.NewDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgres(database, namespace()), database, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StorageDriver)
	}
}

// namespace keys postgres rows by machine so several devices can share a database.
func namespace() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "default"
	}
	return host
}
