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

	httpctx "github.com/avolkov/tokengate/internal/api/http/context"
	"github.com/avolkov/tokengate/internal/api/http/router"
	httpServer "github.com/avolkov/tokengate/internal/api/http/server"
	"github.com/avolkov/tokengate/internal/config"
	"github.com/avolkov/tokengate/internal/logger"
	"github.com/avolkov/tokengate/internal/model"
	"github.com/avolkov/tokengate/internal/repository/postgres"
	"github.com/avolkov/tokengate/internal/server"
	"github.com/avolkov/tokengate/internal/service"
	"github.com/avolkov/tokengate/internal/token"
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

	// A process without a signing secret must not serve logins at all.
	if cfg.JWT.Secret == "" {
		logger.Fatal("refusing to start", "error", model.ErrSigningSecretMissing)
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	accessTokenRepo := postgres.NewAccessTokenRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	authService := service.NewAuth(userRepo, accessTokenRepo, logger, tokenManager)
	tokenService := service.NewTokenService(tokenManager, accessTokenRepo, logger)
	ctxMgr := httpctx.NewManager()

	r := router.New(authService, tokenService, ctxMgr, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

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
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
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
