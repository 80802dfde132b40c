package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/naphat/floodkit/internal/api"
	"github.com/naphat/floodkit/internal/config"
	"github.com/naphat/floodkit/internal/db"
	"github.com/naphat/floodkit/internal/inventory"
	"github.com/naphat/floodkit/internal/logger"
	"github.com/naphat/floodkit/internal/playbook"
	"github.com/naphat/floodkit/internal/storage"
	"github.com/naphat/floodkit/internal/web"
)

func main() {
	cfg := config.Load()

	// Flags override the environment.
	addr := flag.String("addr", cfg.Server.Addr, "listen address")
	dbPath := flag.String("db", cfg.DB.Path, "path to SQLite database file")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Server.Env); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal("opening database", zap.Error(err))
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatal("ensuring database schema", zap.Error(err))
	}
	log.Info("database ready", zap.String("path", *dbPath))

	adapter := storage.New(database, storage.Keys{
		Items:       cfg.Storage.ItemsKey,
		LegacyItems: cfg.Storage.LegacyItemsKey,
		Categories:  cfg.Storage.CategoriesKey,
		Progress:    cfg.Storage.ProgressKey,
	})

	ctx := context.Background()

	store := inventory.NewStore(adapter, config.DefaultCategories(), log)
	if err := store.Load(ctx); err != nil {
		log.Fatal("loading inventory", zap.Error(err))
	}

	tracker := playbook.NewTracker(adapter, log)
	if err := tracker.Load(ctx); err != nil {
		log.Fatal("loading checklist progress", zap.Error(err))
	}

	webRouter, err := web.NewRouter(store, tracker)
	if err != nil {
		log.Fatal("setting up web router", zap.Error(err))
	}

	// API routes take priority, report pages handle the rest.
	apiRouter := api.NewRouter(store, tracker, cfg.Upload.MaxPhotoBytes)
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/metrics", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", *addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
