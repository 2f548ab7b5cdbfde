package service

import "context"

// GlossarySource supplies raw glossary text. Implementations report any
// failure to obtain the text as *entities.SourceUnavailableError.
type GlossarySource interface {
	Fetch(ctx context.Context) (string, error)
	Name() string
}

// GlossaryWriter stores raw glossary text so a database-backed source can serve it.
type GlossaryWriter interface {
	Save(ctx context.Context, body string) error
}
