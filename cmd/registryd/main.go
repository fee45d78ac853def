package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"keywarden/internal/domain"
	"keywarden/internal/registryhttp"
	"keywarden/internal/services/registry"
	"keywarden/internal/store/sqlite"
)

type config struct {
	Addr      string `env:"REGISTRYD_ADDR" envDefault:":8080"`
	DBPath    string `env:"REGISTRYD_DB_PATH"`
	ContextID string `env:"REGISTRYD_CONTEXT_ID" envDefault:"local"`
}

func main() {
	log.SetPrefix("[REGISTRYD] ")

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "registry.db")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

func run(ctx context.Context, cfg config) error {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
		return err
	}
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	reg := registry.New(db, db, domain.ContextID(cfg.ContextID))
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: registryhttp.NewServer(reg, db),
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("registry listening on %s (context %q)", cfg.Addr, cfg.ContextID)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
