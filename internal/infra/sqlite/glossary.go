package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
)

// GlossarySource reads raw glossary text from the glossaries table.
type GlossarySource struct {
	db   *sql.DB
	name string
}

func NewGlossarySource(db *sql.DB, name string) *GlossarySource {
	return &GlossarySource{db: db, name: name}
}

func (s *GlossarySource) Name() string {
	return "sqlite:glossaries/" + s.name
}

func (s *GlossarySource) Fetch(ctx context.Context) (string, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM glossaries WHERE name = ?`, s.name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entities.NewSourceUnavailableError(s.Name(), fmt.Errorf("glossary %q not found", s.name))
	}
	if err != nil {
		return "", entities.NewSourceUnavailableError(s.Name(), fmt.Errorf("select glossary: %w", err))
	}

	return body, nil
}

// Save stores body under this source's name, replacing any previous text.
func (s *GlossarySource) Save(ctx context.Context, body string) error {
	if err := EnsureSchema(ctx, s.db); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO glossaries (name, body, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
	`, s.name, body)
	if err != nil {
		return fmt.Errorf("save glossary %q: %w", s.name, err)
	}
	return nil
}
