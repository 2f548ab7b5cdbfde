package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aliskhannn/glossary-quiz/internal/config"
	"github.com/aliskhannn/glossary-quiz/internal/delivery/tui"
	"github.com/aliskhannn/glossary-quiz/internal/logger"
	"github.com/aliskhannn/glossary-quiz/internal/repository"
	"github.com/aliskhannn/glossary-quiz/internal/service"
)

func main() {
	importFlag := flag.String("import", "", "Store this glossary text file in the configured database source and exit")
	logFlag := flag.String("log", "quiz.log", "Path to the log file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file.
	lg, err := logger.NewFile(cfg, *logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not create log file: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := repository.NewSource(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeSource()

	if *importFlag != "" {
		if err := importGlossary(ctx, source, *importFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Stored %s as %s\n", *importFlag, source.Name())
		return
	}

	quizService := service.NewQuizService(
		source,
		service.NewGlossaryParser(lg.Named("parser")),
		service.NewQuestionGenerator(service.NewOptionGenerator(nil), cfg.Quiz.BlankMarker, lg.Named("generator")),
		lg,
		service.WithShuffle(cfg.Quiz.ShuffleQuestions),
	)

	p := tea.NewProgram(tui.New(ctx, quizService, lg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		lg.Error("tui exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func importGlossary(ctx context.Context, source service.GlossarySource, path string) error {
	writer, ok := source.(service.GlossaryWriter)
	if !ok {
		return fmt.Errorf("source %s is read-only; set source.kind to postgres or sqlite to import", source.Name())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return writer.Save(ctx, string(data))
}
