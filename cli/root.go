// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RootCmd returns the assign command with all subcommands attached.
// The zerolog logger configured from --log-level is stored in the command
// context; subcommands read it with zerolog.Ctx.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "assign",
		Short:         "Optimal one-to-one assignment of agents to tasks (Hungarian method)",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			envFile, err := cmd.Flags().GetString(flagEnvFile)
			if err != nil {
				return err
			}
			if err = loadEnvFile(envFile); err != nil {
				return err
			}

			level, err := zerolog.ParseLevel(resolve(cmd.Flags(), flagLogLevel, EnvLogLevel))
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
				Level(level).
				With().Timestamp().Str("cmd", cmd.Name()).Logger()
			cmd.SetContext(logger.WithContext(cmd.Context()))

			return nil
		},
	}

	root.PersistentFlags().String(flagLogLevel, defaultLogLevel, "log level: debug, info, warn or error")
	root.PersistentFlags().String(flagEnvFile, defaultEnvFile, "dotenv file loaded before reading ASSIGN_* variables (empty to skip)")

	root.AddCommand(
		SolveCmd(),
		ExampleCmd(),
	)

	return root
}
