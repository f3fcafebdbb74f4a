package storage

import (
	"context"
	"database/sql"
	"errors"

	"marketplace-client/internal/logger"

	"go.uber.org/zap"
)

// postgres keeps device storage in the device_storage table (see
// migrations/). namespace separates several installs sharing one database.
type postgres struct {
	db        *sql.DB
	namespace string
}

func NewPostgres(db *sql.DB, namespace string) Storage {
	return &postgres{db: db, namespace: namespace}
}

func (p *postgres) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := p.db.QueryRowContext(ctx, `
		SELECT value
		FROM device_storage
		WHERE namespace = $1 AND key = $2
	`, p.namespace, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("device storage read failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return "", err
	}
	return value, nil
}

func (p *postgres) Set(ctx context.Context, key, value string) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO device_storage (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, p.namespace, key, value)
	if err != nil {
		logger.FromCtx(ctx).Error("device storage write failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return err
}

func (p *postgres) Delete(ctx context.Context, key string) error {
	_, err := p.db.ExecContext(ctx, `
		DELETE FROM device_storage
		WHERE namespace = $1 AND key = $2
	`, p.namespace, key)
	return err
}
