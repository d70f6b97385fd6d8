package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/flower-finder/internal/api"
	"github.com/donaldgifford/flower-finder/internal/config"
	"github.com/donaldgifford/flower-finder/internal/naver"
	"github.com/donaldgifford/flower-finder/internal/store"
	"github.com/donaldgifford/flower-finder/internal/telemetry"
	"github.com/donaldgifford/flower-finder/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), autoMigrate)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "apply pending migrations before serving")

	return cmd
}

func runServe(ctx context.Context, autoMigrate bool) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.Tracing, logger.Service, Version, log)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("flushing traces", "error", err)
		}
	}()

	st, err := store.NewPostgresStore(ctx, cfg.Database.URI,
		store.WithPoolSize(cfg.Database.PoolSize),
		store.WithRawRegex(cfg.Search.RawRegex),
	)
	if err != nil {
		return fmt.Errorf("connecting to flower store: %w", err)
	}
	defer st.Close()

	if autoMigrate {
		if err := st.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations applied")
	}

	rl := naver.NewRateLimiter(
		cfg.Naver.RateLimit.PerSecond,
		cfg.Naver.RateLimit.Burst,
		cfg.Naver.RateLimit.DailyLimit,
	)

	shop := naver.NewSearchClient(
		naver.Credentials{ClientID: cfg.Naver.ClientID, ClientSecret: cfg.Naver.ClientSecret},
		naver.WithShopURL(cfg.Naver.ShopURL),
		naver.WithRateLimiter(rl),
		naver.WithHTTPClient(&http.Client{
			Timeout:   cfg.Naver.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}),
	)

	paginator := naver.NewPaginator(shop,
		naver.WithPageSize(cfg.Naver.PageSize),
		naver.WithResultCeiling(cfg.Naver.ResultCeiling),
		naver.WithSort(cfg.Naver.Sort),
		naver.WithPaginatorLogger(log),
	)

	e := api.NewServer(api.Deps{
		Store:       st,
		Products:    paginator,
		RateLimiter: rl,
		Logger:      log,
		CORSOrigins: cfg.Server.CORSOrigins,
		Version:     Version,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      otelhttp.NewHandler(e, logger.Service),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving HTTP: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
