package config

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"file", Config{Source: Source{Kind: "file", Location: "g.txt"}}, false},
		{"kind is normalized", Config{Source: Source{Kind: " HTTP ", Location: "https://example.com/g.txt"}}, false},
		{"empty location", Config{Source: Source{Kind: "file"}}, true},
		{"unknown kind", Config{Source: Source{Kind: "ftp", Location: "x"}}, true},
		{"postgres without dsn", Config{Source: Source{Kind: "postgres", Location: "main"}}, true},
		{"postgres", Config{Source: Source{Kind: "postgres", Location: "main"}, DB: DB{URL: "postgres://localhost/db"}}, false},
		{"sqlite without path", Config{Source: Source{Kind: "sqlite", Location: "main"}}, true},
		{"sqlite", Config{SQLitePath: "g.db", Source: Source{Kind: "sqlite", Location: "main"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_UnknownKindError(t *testing.T) {
	cfg := Config{Source: Source{Kind: "ftp", Location: "x"}}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidSourceKind) {
		t.Fatalf("err = %v, want ErrInvalidSourceKind", err)
	}
}

func TestRequireTelegram(t *testing.T) {
	var cfg Config
	if err := cfg.RequireTelegram(); !errors.Is(err, ErrMissingEnvironmentVariables) {
		t.Fatalf("err = %v", err)
	}
	cfg.TelegramAPIToken = "token"
	if err := cfg.RequireTelegram(); err != nil {
		t.Fatalf("err = %v", err)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("GLOSSARY_SOURCE", "http")
	t.Setenv("GLOSSARY_LOCATION", "https://example.com/glossary.txt")
	t.Setenv("TELEGRAM_API_TOKEN", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.Kind != SourceHTTP || cfg.Source.Location != "https://example.com/glossary.txt" {
		t.Fatalf("source = %+v", cfg.Source)
	}
	if cfg.TelegramAPIToken != "secret" {
		t.Fatalf("token not loaded")
	}
	if cfg.Quiz.BlankMarker != "_____" || cfg.Source.MaxBytes != 1<<20 {
		t.Fatalf("defaults not applied: %+v %+v", cfg.Quiz, cfg.Source)
	}
	if cfg.Quiz.ShuffleQuestions {
		t.Fatalf("questions are shuffled on load by default")
	}
}
