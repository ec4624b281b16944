package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mkhalitov/shoplist/internal/config"
	"github.com/mkhalitov/shoplist/internal/logger"
	"github.com/mkhalitov/shoplist/migrations"
)

// DB wraps the shared *sql.DB handle together with the pieces that differ
// per backend: the goose dialect used for migrations and the constraint
// classifier used to recognise unique violations.
//
// The handle is constructed once at startup, injected into the
// repositories, and closed on shutdown.
type DB struct {
	*sql.DB
	dialect     string
	constraints ConstraintClassifier
	logger      *logger.Logger
}

// NewConnect opens the storage backend selected by the DSN scheme:
// "postgres://" and "postgresql://" pick PostgreSQL, anything else is
// treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate brings the schema up to date using the embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
