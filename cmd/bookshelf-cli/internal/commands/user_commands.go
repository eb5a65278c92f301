package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/MGTheTrain/bookshelf/internal/app"
	"github.com/MGTheTrain/bookshelf/internal/domain/users"
	"github.com/MGTheTrain/bookshelf/internal/infrastructure/persistence"
	"github.com/MGTheTrain/bookshelf/internal/infrastructure/security"
	"github.com/MGTheTrain/bookshelf/internal/pkg/config"
	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newCreateUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user, prompting for missing credentials",
		Args:  cobra.NoArgs,
		RunE:  runCreateUser,
	}
	cmd.Flags().String("username", "", "Username of the new user")
	cmd.Flags().String("password", "", "Password of the new user")
	return cmd
}

func newIssueTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Print a bearer token for an existing user",
		Args:  cobra.NoArgs,
		RunE:  runIssueToken,
	}
	cmd.Flags().String("username", "", "Username the token is issued for")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func runCreateUser(cmd *cobra.Command, _ []string) error {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		return fmt.Errorf("invalid username flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	if username == "" {
		if username, err = prompt(in, out, "Please enter username"); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = prompt(in, out, "Please enter password"); err != nil {
			return err
		}
	}

	return withAuthService(cmd, func(auth users.AuthService) error {
		user, err := auth.Register(cmd.Context(), &users.Credentials{Username: username, Password: password})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		fmt.Fprintf(out, "Created user %s with id %d\n", user.Username, user.ID)
		return nil
	})
}

func runIssueToken(cmd *cobra.Command, _ []string) error {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		return fmt.Errorf("invalid username flag: %w", err)
	}

	return withAuthService(cmd, func(auth users.AuthService) error {
		token, err := auth.IssueToken(cmd.Context(), username)
		if err != nil {
			return fmt.Errorf("failed to issue token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	})
}

// withAuthService opens the database, builds the auth service and closes the database after fn.
func withAuthService(cmd *cobra.Command, fn func(users.AuthService) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := setupLogger(config.LogLevelError)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	db, err := openDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = persistence.CloseDB(db) }()

	auth, err := newAuthService(db, cfg.Auth, log)
	if err != nil {
		return err
	}
	return fn(auth)
}

func newAuthService(db *gorm.DB, settings config.AuthSettings, log logger.Logger) (users.AuthService, error) {
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	hasher, err := security.NewBcryptHasher(settings.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}
	issuer, err := security.NewJWTIssuer(settings.JWTSecret, settings.Issuer, settings.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}
	return app.NewAuthService(userRepo, hasher, issuer, log)
}

func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprintln(out, label)
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	value := strings.TrimSpace(line)
	if value == "" {
		return "", fmt.Errorf("%s: no value given", strings.ToLower(label))
	}
	return value, nil
}
