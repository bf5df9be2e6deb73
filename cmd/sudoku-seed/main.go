// Command sudoku-seed fills the board catalogue from the puzzle API
// until each difficulty reaches its target count.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/Kashawn-Brown/AI-Sudoku/internal/boardsource"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/config"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/domain"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/infrastructure/storage"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/validator"
)

func main() {
	cfgFile := flag.String("config", "", "config file path")
	target := flag.Int("target", 0, "boards per difficulty (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := storage.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Error("db open failed", "err", err)
		os.Exit(1)
	}
	if err := storage.Migrate(db); err != nil {
		logger.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	n := cfg.SeedTarget
	if *target > 0 {
		n = *target
	}
	targets := make(map[domain.Difficulty]int, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		targets[d] = n
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := boardsource.NewPopulator(
		boardsource.NewClient(cfg.SeedAPIURL),
		storage.NewBoardStore(db),
		validator.New(),
		logger,
	)
	if err := p.Populate(ctx, targets); err != nil {
		logger.Error("populate failed", "err", err)
		os.Exit(1)
	}
	logger.Info("seeding complete", "per_difficulty", n)
}
