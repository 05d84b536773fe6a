// main is the entry point of the Student Records API.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file (+ .env + environment)
//  2. Initialise the logger
//  3. Open the database and apply migrations
//  4. Pick the session store (same database, or Redis)
//  5. Build the services and seed the bootstrap admin
//  6. Build the router and start the HTTP server in a goroutine
//  7. Block until an OS signal (Ctrl+C / kill) arrives
//  8. Gracefully shut down: finish in-flight requests, close stores, exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/students-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/students-api
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aanand-mishra/student-records-api/internal/config"
	"github.com/aanand-mishra/student-records-api/internal/http/handlers/admin"
	"github.com/aanand-mishra/student-records-api/internal/http/router"
	"github.com/aanand-mishra/student-records-api/internal/logger"
	adminsvc "github.com/aanand-mishra/student-records-api/internal/service/admin"
	studentsvc "github.com/aanand-mishra/student-records-api/internal/service/student"
	"github.com/aanand-mishra/student-records-api/internal/session"
	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/storage/redisstore"
	"github.com/aanand-mishra/student-records-api/internal/storage/sqlstore"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad exits the process if anything is wrong, so from here on
	// cfg is guaranteed valid.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	if err := logger.Initialize(cfg.Env, cfg.LogLevel); err != nil {
		panic(err)
	}
	log := logger.Log
	defer func() { _ = log.Sync() }()

	log.Infow("starting students-api",
		"env", cfg.Env,
		"version", "1.0.0",
	)

	if err := run(cfg); err != nil {
		log.Errorw("students-api stopped with error", "error", err)
		_ = log.Sync()
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

func run(cfg *config.Config) error {
	log := logger.Log
	ctx := context.Background()

	// ── 3. Initialise Storage (Database) ──────────────────────────────────
	// The rest of the program only sees the storage interfaces, so the
	// driver is purely a config decision.
	store, err := sqlstore.New(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	log.Infow("storage initialised",
		"driver", cfg.Storage.Driver,
		"path", cfg.StoragePath,
	)

	// ── 4. Session Store ──────────────────────────────────────────────────
	var sessions storage.SessionStore = store
	if cfg.Session.Store == config.SessionStoreRedis {
		rs, err := redisstore.New(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rs.Close()

		sessions = rs
		log.Infow("sessions stored in redis", "address", cfg.Redis.Addr)
	}

	// ── 5. Services ───────────────────────────────────────────────────────
	encoder, err := adminsvc.NewEncoder(cfg.Admin.PasswordEncoding)
	if err != nil {
		return err
	}
	if cfg.Admin.PasswordEncoding == config.PasswordPlain {
		log.Warn("admin passwords are stored as plain text; set admin.password_encoding=bcrypt")
	}

	admins := adminsvc.NewService(store, encoder)
	students := studentsvc.NewService(store)
	manager := session.NewManager(sessions, cfg.Session.Secret, cfg.Session.TTL)

	if cfg.Admin.BootstrapEmail != "" && cfg.Admin.BootstrapPassword != "" {
		created, err := admins.EnsureAdmin(ctx, cfg.Admin.BootstrapEmail, cfg.Admin.BootstrapPassword)
		if err != nil {
			return err
		}
		if created {
			log.Infow("bootstrap admin created", "email", cfg.Admin.BootstrapEmail)
		}
	}

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	handler := router.New(router.Deps{
		Students:       students,
		Admins:         admins,
		Sessions:       manager,
		Cookie:         admin.Cookie{Name: cfg.Session.CookieName, Secure: cfg.Session.SecureCookie},
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
		Ping:           store.Ping,
		Log:            log,
	})

	server := &http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	// ListenAndServe blocks, so it runs in its own goroutine and reports
	// a startup failure back through errChan.
	errChan := make(chan error, 1)
	go func() {
		log.Infow("server started", "address", cfg.HTTPServer.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// ── 7. Wait for Shutdown Signal ───────────────────────────────────────
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-sigCtx.Done():
		log.Info("shutdown signal received, stopping server...")
	case err := <-errChan:
		return err
	}

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	// Shutdown stops accepting connections and waits for active requests
	// up to the configured deadline. Deferred Close calls run afterwards.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
