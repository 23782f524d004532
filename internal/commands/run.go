package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/auditlog"
	"github.com/teller-dev/teller/internal/bank"
	"github.com/teller-dev/teller/internal/config"
	"github.com/teller-dev/teller/internal/session"
)

const configFileName = "teller.yaml"

func newRunCommand() *cobra.Command {
	var configPath string
	var bankName string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive banking session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if bankName != "" {
				cfg.Bank.Name = bankName
			}

			b, err := seedBank(cfg, logger)
			if err != nil {
				return err
			}

			s := session.New(b, auditlog.New(), logger, cmd.InOrStdin(), cmd.OutOrStdout())
			return s.Run()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", configFileName, "path to teller.yaml")
	cmd.Flags().StringVar(&bankName, "bank", "", "bank display name (overrides config)")

	return cmd
}

// loadConfig reads the config file if present and falls back to the
// demo fixture when it is not.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default("Example Bank"), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// seedBank provisions the configured users and their extra accounts.
// A credential hashing failure here is fatal: the bank cannot operate
// without its credential model.
func seedBank(cfg *config.Config, logger *slog.Logger) (*bank.Bank, error) {
	b := bank.New(cfg.Bank.Name)

	for _, seed := range cfg.SeedUsers {
		u, err := b.AddUser(seed.FirstName, seed.LastName, seed.Pin)
		if err != nil {
			return nil, fmt.Errorf("seeding user %s %s: %w", seed.FirstName, seed.LastName, err)
		}
		logger.Info("new user created",
			"last_name", u.LastName(), "first_name", u.FirstName(), "user_id", u.ID())

		for _, name := range seed.Accounts {
			if _, err := b.OpenAccount(u, name); err != nil {
				return nil, fmt.Errorf("opening %s account for %s: %w", name, u.ID(), err)
			}
		}
	}
	return b, nil
}
