package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aliskhannn/glossary-quiz/internal/domain/entities"
)

type fakeRow struct {
	body string
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.body
	return nil
}

type fakeDB struct {
	row     fakeRow
	execErr error
	queries []string
	args    [][]any
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.queries = append(db.queries, sql)
	db.args = append(db.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), db.execErr
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.queries = append(db.queries, sql)
	db.args = append(db.args, args)
	return db.row
}

func TestGlossarySource_Fetch(t *testing.T) {
	db := &fakeDB{row: fakeRow{body: "apple\napple: A fruit."}}

	got, err := NewGlossarySource(db, "fruits").Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != "apple\napple: A fruit." {
		t.Fatalf("Fetch = %q", got)
	}
	if len(db.args) != 1 || db.args[0][0] != "fruits" {
		t.Fatalf("query args = %v", db.args)
	}
}

func TestGlossarySource_FetchErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"no rows", pgx.ErrNoRows},
		{"connection lost", errors.New("conn closed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeDB{row: fakeRow{err: tt.err}}

			_, err := NewGlossarySource(db, "fruits").Fetch(context.Background())
			if !errors.Is(err, entities.ErrSourceUnavailable) {
				t.Fatalf("err = %v, want ErrSourceUnavailable", err)
			}

			var sue *entities.SourceUnavailableError
			if !errors.As(err, &sue) || sue.Source != "postgres:glossaries/fruits" {
				t.Fatalf("err = %#v", err)
			}
		})
	}
}

func TestGlossarySource_Save(t *testing.T) {
	db := &fakeDB{}

	if err := NewGlossarySource(db, "fruits").Save(context.Background(), "body"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(db.queries) != 2 {
		t.Fatalf("queries = %d, want schema + upsert", len(db.queries))
	}
	if !strings.Contains(db.queries[0], "CREATE TABLE IF NOT EXISTS glossaries") {
		t.Fatalf("first query = %q", db.queries[0])
	}
	if !strings.Contains(db.queries[1], "ON CONFLICT (name)") || db.args[1][1] != "body" {
		t.Fatalf("upsert = %q %v", db.queries[1], db.args[1])
	}
}

func TestGlossarySource_SaveError(t *testing.T) {
	db := &fakeDB{execErr: errors.New("read-only transaction")}

	err := NewGlossarySource(db, "fruits").Save(context.Background(), "body")
	if err == nil || !strings.Contains(err.Error(), "read-only transaction") {
		t.Fatalf("err = %v", err)
	}
}
