package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/config"
)

func newInitCommand() *cobra.Command {
	var bankName string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default teller.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			path := filepath.Join(absDir, configFileName)
			if err := config.Save(path, config.Default(bankName)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&bankName, "bank-name", "Example Bank", "bank display name")

	return cmd
}
