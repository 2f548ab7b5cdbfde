package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
)

const createGlossariesTable = `
	CREATE TABLE IF NOT EXISTS glossaries (
		name       TEXT PRIMARY KEY,
		body       TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// GlossarySource reads raw glossary text stored in the glossaries table.
type GlossarySource struct {
	db   DBTX
	name string
}

// NewGlossarySource creates a source for the glossary row called name.
func NewGlossarySource(db DBTX, name string) *GlossarySource {
	return &GlossarySource{db: db, name: name}
}

func (s *GlossarySource) Name() string {
	return "postgres:glossaries/" + s.name
}

// Fetch loads the glossary body. A missing row or a failed query is
// reported as *entities.SourceUnavailableError.
func (s *GlossarySource) Fetch(ctx context.Context) (string, error) {
	query := `SELECT body FROM glossaries WHERE name = $1`

	var body string
	if err := s.db.QueryRow(ctx, query, s.name).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", entities.NewSourceUnavailableError(s.Name(), fmt.Errorf("glossary %q not found", s.name))
		}
		return "", entities.NewSourceUnavailableError(s.Name(), fmt.Errorf("select glossary: %w", err))
	}

	return body, nil
}

// EnsureSchema creates the glossaries table if needed.
func (s *GlossarySource) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createGlossariesTable); err != nil {
		return fmt.Errorf("create glossaries table: %w", err)
	}
	return nil
}

// Save stores body as this source's glossary, replacing any previous text.
// The table is created on first use.
func (s *GlossarySource) Save(ctx context.Context, body string) error {
	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}

	query := `
		INSERT INTO glossaries (name, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE
		SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.db.Exec(ctx, query, s.name, body); err != nil {
		return fmt.Errorf("save glossary %q: %w", s.name, err)
	}
	return nil
}
