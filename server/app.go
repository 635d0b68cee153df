package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"netbackup/config"
	"netbackup/internal/api"
	"netbackup/internal/auth"
	"netbackup/internal/db"
	"netbackup/internal/health"
	"netbackup/internal/logs"
	"netbackup/internal/middleware"
	"netbackup/internal/models"
	"netbackup/internal/repo"
)

type App struct {
	cfg        *config.Config
	db         *gorm.DB
	Router     *mux.Router
	httpServer *http.Server

	ctx    context.Context
	cancel context.CancelFunc
}

func (a *App) Initialize(cfg *config.Config) {
	a.cfg = cfg

	logs.Init(logs.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})

	d, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	a.db = d

	// Schema is created idempotently; changes go through reseed.
	if err := a.db.AutoMigrate(models.All()...); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	authSvc := auth.New(auth.Options{
		SecretKey:     cfg.Auth.SecretKey,
		TokenTTL:      time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute,
		BootstrapUser: cfg.Auth.BootstrapUser,
		BootstrapPass: cfg.Auth.BootstrapPass,
	})

	h := &api.Handler{
		Auth:        authSvc,
		Admins:      repo.NewAdminStore(a.db),
		Devices:     repo.NewDeviceStore(a.db),
		Groups:      repo.NewGroupStore(a.db),
		Sites:       repo.NewSiteStore(a.db),
		Locations:   repo.NewLocationStore(a.db),
		Credentials: repo.NewCredentialStore(a.db),
		Passwords:   repo.NewPasswordStore(a.db),
		Backups:     repo.NewBackupStore(a.db),
		Dashboard:   repo.NewDashboardStore(a.db),
	}

	a.Router = mux.NewRouter().StrictSlash(true)
	a.Router.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.LoggerMW,
		middleware.CORS(cfg.Server.CORSOrigins),
	)
	middleware.Preflight(a.Router)

	health.RegisterRoutes(a.Router, a.db)
	h.Register(a.Router)

	_ = a.Router.Walk(func(rt *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, _ := rt.GetPathTemplate()
		methods, _ := rt.GetMethods()
		if len(methods) == 0 {
			methods = []string{"ANY"}
		}
		log.Printf("route: %-6v %s", methods, path)
		return nil
	})
}

func (a *App) Run() error {
	if a.Router == nil || a.cfg == nil {
		return fmt.Errorf("server not initialized")
	}

	bind := net.JoinHostPort(a.cfg.Server.Address, a.cfg.Server.HTTPPort)

	a.ctx, a.cancel = context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigs
		logs.Logger.Infof("shutdown signal: %s", s)
		a.cancel()
	}()

	a.httpServer = &http.Server{
		Addr:              bind,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logs.Logger.Infof("HTTP listening on %s", bind)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Logger.Fatalf("http server error: %v", err)
		}
	}()

	<-a.ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		logs.Logger.Errorf("http shutdown: %v", err)
	}
	return nil
}
