package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/glossary-quiz/internal/config"
	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
	"github.com/aliskhannn/glossary-quiz/internal/infra/postgres"
	"github.com/aliskhannn/glossary-quiz/internal/infra/sqlite"
	"github.com/aliskhannn/glossary-quiz/internal/service"
)

// NewSource builds the glossary source selected by cfg. The returned close
// function releases database connections and is never nil.
// Database connections are made lazily, so an unreachable database is
// reported by Fetch as *entities.SourceUnavailableError and can be retried.
func NewSource(ctx context.Context, cfg *config.Config) (service.GlossarySource, func(), error) {
	noop := func() {}

	switch cfg.Source.Kind {
	case config.SourceFile:
		return NewFileSource(cfg.Source.Location), noop, nil

	case config.SourceHTTP:
		return NewHTTPSource(cfg.Source.Location, cfg.Source.HTTPTimeout, cfg.Source.MaxBytes), noop, nil

	case config.SourcePostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, noop, err
		}
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        cfg.DB.MaxConnections,
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, noop, entities.NewSourceUnavailableError("postgres:glossaries/"+cfg.Source.Location, err)
		}
		return postgres.NewGlossarySource(pool, cfg.Source.Location), pool.Close, nil

	case config.SourceSQLite:
		conn, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, noop, entities.NewSourceUnavailableError("sqlite:glossaries/"+cfg.Source.Location, err)
		}
		return sqlite.NewGlossarySource(conn, cfg.Source.Location), func() { _ = conn.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", config.ErrInvalidSourceKind, cfg.Source.Kind)
	}
}
