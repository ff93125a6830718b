package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	httpContext "github.com/dtroode/scribehub/internal/api/http/context"
	"github.com/dtroode/scribehub/internal/api/http/router"
	httpServer "github.com/dtroode/scribehub/internal/api/http/server"
	"github.com/dtroode/scribehub/internal/clock"
	"github.com/dtroode/scribehub/internal/config"
	"github.com/dtroode/scribehub/internal/github"
	"github.com/dtroode/scribehub/internal/logger"
	"github.com/dtroode/scribehub/internal/model"
	"github.com/dtroode/scribehub/internal/password"
	"github.com/dtroode/scribehub/internal/repository/memory"
	"github.com/dtroode/scribehub/internal/repository/postgres"
	"github.com/dtroode/scribehub/internal/server"
	"github.com/dtroode/scribehub/internal/service"
	"github.com/dtroode/scribehub/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

type stores struct {
	accounts model.AccountStore
	profiles model.ProfileStore
	posts    model.PostStore
	pinger   model.Pinger
	closer   io.Closer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig(".env")
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	st, err := openStores(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer st.closer.Close()

	clk := clock.NewRealClock()
	ctxMgr := httpContext.NewManager()

	tokenService := service.NewTokenService(token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL, clk), logger)
	authService := service.NewAuth(st.accounts, st.profiles, st.posts, password.NewBcrypt(cfg.Bcrypt.Cost), tokenService, clk, logger)
	profileService := service.NewProfile(st.profiles, st.accounts, clk, logger)
	feedService := service.NewFeed(st.posts, st.accounts, clk, logger)
	githubClient := github.NewClient(cfg.Github.APIURL, cfg.Github.ClientID, cfg.Github.Secret, cfg.Github.Timeout, cfg.Github.RepoLimit)
	repoService := service.NewRepos(githubClient, logger)

	r := router.New(authService, profileService, feedService, repoService, tokenService, st.pinger, ctxMgr, logger)
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
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openStores(ctx context.Context, cfg config.Database, logger *logger.Logger) (stores, error) {
	if cfg.InMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		db := memory.NewDB()
		return stores{
			accounts: memory.NewAccountRepository(db),
			profiles: memory.NewProfileRepository(db),
			posts:    memory.NewPostRepository(db),
			pinger:   db,
			closer:   io.NopCloser(nil),
		}, nil
	}

	conn, err := postgres.NewConnection(ctx, cfg.DSN)
	if err != nil {
		return stores{}, err
	}
	return stores{
		accounts: postgres.NewAccountRepository(conn),
		profiles: postgres.NewProfileRepository(conn),
		posts:    postgres.NewPostRepository(conn),
		pinger:   conn,
		closer:   conn,
	}, nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
