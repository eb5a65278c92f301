package commands

import (
	"fmt"

	"github.com/MGTheTrain/bookshelf/internal/infrastructure/persistence"
	"github.com/MGTheTrain/bookshelf/internal/pkg/config"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := setupLogger(config.LogLevelInfo)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	db, err := openDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = persistence.CloseDB(db) }()

	fmt.Fprintf(cmd.OutOrStdout(), "Migrated %s database\n", cfg.Database.Type)
	return nil
}
