package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/edulane/tutorhub/internal/app"
	"github.com/edulane/tutorhub/internal/config"
	"github.com/edulane/tutorhub/internal/handlers"
	"github.com/edulane/tutorhub/internal/repository"
	"github.com/edulane/tutorhub/internal/store"
	"github.com/edulane/tutorhub/internal/web"
)

func main() {
	cfg := config.Load()
	log := app.NewLogger(cfg.Environment)
	defer func() { _ = log.Sync() }()

	s, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("open store", zap.Error(err))
	}
	defer func() { _ = s.Close() }()

	repos := repository.New(s)
	if err := repos.Subjects.EnsureDefaults(); err != nil {
		log.Fatal("seed subjects", zap.Error(err))
	}

	api := handlers.New(repos, log)
	r := web.Router(api)

	log.Info("tutorhub listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
