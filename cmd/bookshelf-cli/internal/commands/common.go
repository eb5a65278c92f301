// Package commands implements the bookshelf-cli sub-commands.
package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/bookshelf/internal/infrastructure/persistence"
	"github.com/MGTheTrain/bookshelf/internal/pkg/config"
	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const configFlag = "config"

func setupLogger(level string) (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: level,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig resolves the config path from --config, then CONFIG_PATH, then the default.
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	path, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", configFlag, err)
	}
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = config.DefaultConfigPath
	}

	cfg, err := config.InitializeRestConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return cfg, nil
}

// openDatabase connects and brings the schema up to date, like the server does on startup.
func openDatabase(cfg *config.RestConfig, log logger.Logger) (*gorm.DB, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Debug("Database schema is up to date")
	return db, nil
}

// NewRootCommand builds the CLI with every sub-command registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bookshelf-cli",
		Short: "Administration CLI for the bookshelf API",
		Long: `bookshelf-cli manages the bookshelf database outside of the HTTP API.
It migrates the schema, creates users and issues access tokens.

Configuration is read from --config, CONFIG_PATH or configs/rest-app.yaml,
with BOOKSHELF_* environment variables taking precedence.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(configFlag, "", "Path to the YAML configuration file")

	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newCreateUserCommand())
	rootCmd.AddCommand(newIssueTokenCommand())
	return rootCmd
}
