package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/flower-finder/internal/config"
	"github.com/donaldgifford/flower-finder/internal/store"
	"github.com/donaldgifford/flower-finder/pkg/logger"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the flowers collection schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd.Context())
		},
	}
}

func runMigrate(ctx context.Context) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.URI)
	if err != nil {
		return fmt.Errorf("connecting to flower store: %w", err)
	}
	defer st.Close()

	versions, err := store.Migrations()
	if err != nil {
		return err
	}
	log.Info("running migrations", "available", len(versions))

	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	log.Info("migrations complete")
	return nil
}
