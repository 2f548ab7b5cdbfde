package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
)

func TestGlossarySource_SaveAndFetch(t *testing.T) {
	ctx := context.Background()

	conn, err := Open(filepath.Join(t.TempDir(), "glossary.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer conn.Close()

	src := NewGlossarySource(conn, "fruits")
	if err := src.Save(ctx, "apple\napple: A fruit."); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := src.Save(ctx, "banana\nbanana: A yellow fruit."); err != nil {
		t.Fatalf("Save (overwrite): %v", err)
	}

	got, err := src.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != "banana\nbanana: A yellow fruit." {
		t.Fatalf("Fetch = %q, want the latest body", got)
	}
}

func TestGlossarySource_Missing(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "glossary.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer conn.Close()

	src := NewGlossarySource(conn, "nope")
	_, err = src.Fetch(context.Background())
	if !errors.Is(err, entities.ErrSourceUnavailable) {
		t.Fatalf("err = %v, want ErrSourceUnavailable", err)
	}
	if src.Name() != "sqlite:glossaries/nope" {
		t.Fatalf("Name = %q", src.Name())
	}
}

func TestGlossarySource_ClosedDB(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "glossary.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	conn.Close()

	_, err = NewGlossarySource(conn, "x").Fetch(context.Background())
	if !errors.Is(err, entities.ErrSourceUnavailable) {
		t.Fatalf("err = %v, want ErrSourceUnavailable", err)
	}
}
