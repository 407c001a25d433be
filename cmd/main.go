package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dkulagin/bookmarkd/internal/api/http/appcontext"
	"github.com/dkulagin/bookmarkd/internal/api/http/router"
	"github.com/dkulagin/bookmarkd/internal/config"
	"github.com/dkulagin/bookmarkd/internal/logger"
	"github.com/dkulagin/bookmarkd/internal/model"
	"github.com/dkulagin/bookmarkd/internal/password"
	"github.com/dkulagin/bookmarkd/internal/repository/postgres"
	"github.com/dkulagin/bookmarkd/internal/server"
	"github.com/dkulagin/bookmarkd/internal/service"
	"github.com/dkulagin/bookmarkd/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	// A missing signing secret is a startup error, never a runtime one.
	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	bookmarkRepo := postgres.NewBookmarkRepository(db)

	hasher := password.NewHasher(password.Params{
		Time:   cfg.KDF.Time,
		MemKiB: cfg.KDF.MemKiB,
		Par:    cfg.KDF.Par,
	}, cfg.KDF.MaxConcurrent)

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	tokenService := service.NewTokenService(tokenManager, logger)
	authService := service.NewAuth(userRepo, hasher, tokenService, logger)
	bookmarkService := service.NewBookmark(bookmarkRepo, logger)
	ctxMgr := appcontext.NewManager()

	r := router.New(authService, bookmarkService, tokenService, ctxMgr, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
