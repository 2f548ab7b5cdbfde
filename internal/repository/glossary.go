package repository

import (
	"context"
	"os"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
)

// FileSource reads glossary text from a local file.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return s.path
}

// Fetch reads the whole file. A missing or unreadable file is reported as
// *entities.SourceUnavailableError.
func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", entities.NewSourceUnavailableError(s.path, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", entities.NewSourceUnavailableError(s.path, err)
	}

	return string(data), nil
}

// StaticSource serves glossary text held in memory.
type StaticSource struct {
	name string
	text string
}

// NewStaticSource creates a StaticSource.
func NewStaticSource(name, text string) *StaticSource {
	return &StaticSource{name: name, text: text}
}

func (s *StaticSource) Name() string {
	return s.name
}

func (s *StaticSource) Fetch(_ context.Context) (string, error) {
	return s.text, nil
}
