package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/aminebt/khadamat/internal/config"
	"github.com/aminebt/khadamat/internal/docstore"
	"github.com/aminebt/khadamat/internal/handlers"
	"github.com/aminebt/khadamat/internal/hash"
	"github.com/aminebt/khadamat/internal/logging"
	authmw "github.com/aminebt/khadamat/internal/middleware/auth"
	loggingmw "github.com/aminebt/khadamat/internal/middleware/logging"
	"github.com/aminebt/khadamat/internal/models"
	"github.com/aminebt/khadamat/internal/notify"
	"github.com/aminebt/khadamat/internal/repo"
	"github.com/aminebt/khadamat/internal/repo/gormrepo"
	"github.com/aminebt/khadamat/internal/repo/jsonrepo"
	"github.com/aminebt/khadamat/internal/session"
	httpserver "github.com/aminebt/khadamat/internal/transport/http"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LOG_LEVEL)
	slog.SetDefault(log)

	users, app, closeStore, err := openRepos(cfg, log)
	if err != nil {
		log.Error("failed to open storage", "driver", cfg.STORE_DRIVER, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	sessions, closeSessions, err := openSessions(cfg, log)
	if err != nil {
		log.Error("failed to open session store", "error", err)
		os.Exit(1)
	}
	defer closeSessions()

	notifier, closeNotifier := openNotifier(cfg, log)
	defer closeNotifier()

	seedAdmin(context.Background(), cfg, users, log)

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(log))

	gate := &authmw.Gate{Sessions: sessions}
	deps := httpserver.Deps{
		Gate: gate,
		AuthHandler: &handlers.AuthHandler{
			Users:        users,
			Sessions:     sessions,
			SessionTTL:   cfg.SESSION_TTL,
			CookieSecure: cfg.COOKIE_SECURE,
		},
		CatalogHandler: &handlers.CatalogHandler{App: app},
		RequestHandler: &handlers.RequestHandler{App: app, Notifier: notifier},
		AdminHandler:   &handlers.AdminHandler{App: app},
		PublicDir:      cfg.PUBLIC_DIR,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + cfg.APP_PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.Info("server started", "addr", srv.Addr, "driver", cfg.STORE_DRIVER)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", "error", err)
	}

	log.Info("shutdown complete")
}

func openRepos(cfg *config.Config, log *slog.Logger) (repo.Users, repo.App, func(), error) {
	if cfg.STORE_DRIVER == "sqlite" {
		db, err := gormrepo.Open(cfg.SQLITE_DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return gormrepo.NewUserRepo(db), gormrepo.NewAppRepo(db), closeFn, nil
	}

	store, err := docstore.NewFileStore(cfg.DATA_DIR, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return jsonrepo.NewUserRepo(store), jsonrepo.NewAppRepo(store), func() {}, nil
}

func openSessions(cfg *config.Config, log *slog.Logger) (session.Store, func(), error) {
	if cfg.REDIS_ADDR != "" {
		store, err := session.NewRedisStore(cfg.REDIS_ADDR, cfg.REDIS_PASSWORD, cfg.SESSION_TTL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using redis session store", "addr", cfg.REDIS_ADDR)
		return store, func() { _ = store.Close() }, nil
	}
	store := session.NewMemoryStore(cfg.SESSION_TTL)
	return store, store.Close, nil
}

func openNotifier(cfg *config.Config, log *slog.Logger) (notify.Notifier, func()) {
	if cfg.KAFKA_ADDRESS != "" {
		n := notify.NewKafkaNotifier(cfg.KAFKA_ADDRESS, cfg.KAFKA_TOPIC)
		log.Info("using kafka notifier", "addr", cfg.KAFKA_ADDRESS, "topic", cfg.KAFKA_TOPIC)
		return n, func() { _ = n.Close() }
	}
	return notify.NewLogNotifier(log), func() {}
}

// seedAdmin creates the admin account from ADMIN_* env vars when it does
// not exist yet. Registration only ever creates plain users, so this is
// the way the first admin comes to be.
func seedAdmin(ctx context.Context, cfg *config.Config, users repo.Users, log *slog.Logger) {
	if cfg.ADMIN_USERNAME == "" || cfg.ADMIN_PASSWORD == "" {
		return
	}
	pwHash, err := hash.HashPassword(cfg.ADMIN_PASSWORD)
	if err != nil {
		log.Error("seed admin: hash password", "error", err)
		return
	}
	err = users.Create(ctx, models.User{
		Username:     cfg.ADMIN_USERNAME,
		Email:        cfg.ADMIN_EMAIL,
		PasswordHash: pwHash,
		Role:         models.RoleAdmin,
	})
	switch {
	case errors.Is(err, repo.ErrUsernameTaken):
		log.Info("admin user already exists", "username", cfg.ADMIN_USERNAME)
	case err != nil:
		log.Error("seed admin failed", "error", err)
	default:
		log.Info("admin user seeded", "username", cfg.ADMIN_USERNAME)
	}
}
