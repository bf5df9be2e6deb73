package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "github.com/Kashawn-Brown/AI-Sudoku/internal/adapters/http"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/auth"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/config"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/infrastructure/storage"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/progress"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/usecase"
	"github.com/Kashawn-Brown/AI-Sudoku/internal/validator"
)

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	cfgFile := flag.String("config", "", "config file path")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	db, err := storage.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Error("db open failed", "err", err)
		os.Exit(1)
	}
	if err := storage.Migrate(db); err != nil {
		logger.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	// Wire stores → use cases → HTTP adapter
	stores := storage.NewStores(db)
	tx := storage.NewTxManager(db)
	v := validator.New()
	tracker := progress.New(v)
	clock := usecase.SystemClock{}
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())

	games := usecase.NewGameService(tx, stores, tracker, clock, logger)
	users := usecase.NewUserService(stores.Users, tokens, clock, logger)
	boards := usecase.NewBoardService(stores.Boards, logger)

	h := httpadapter.New(users, boards, games, tokens, logger)
	router := h.NewRouter(cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "driver", cfg.DBDriver)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
