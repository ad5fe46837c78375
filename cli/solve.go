// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/assignment/instance"
	"github.com/katalvlaran/assignment/report"
)

// SolveCmd solves an instance file (.yaml, .yml, .json or .csv).
func SolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve an assignment instance from a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			input, _ := cmd.Flags().GetString(flagInput)
			output, _ := cmd.Flags().GetString(flagOutput)
			direction, _ := cmd.Flags().GetString(flagDirection)

			p, err := instance.Load(input)
			if err != nil {
				return err
			}
			if direction != "" {
				p.Direction = direction
			}

			return run(cmd, p, cfg, output)
		},
	}

	cmd.Flags().StringP(flagInput, "i", "", "instance file (.yaml, .yml, .json, .csv)")
	cmd.Flags().StringP(flagOutput, "o", "", "write the report to this file instead of stdout")
	cmd.Flags().StringP(flagDirection, "d", "", "min or max; overrides the direction stored in the file")
	addSolverFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired(flagInput)

	return cmd
}

// run solves p and writes the report to output (stdout when empty).
func run(cmd *cobra.Command, p *instance.Problem, cfg Config, output string) error {
	log := zerolog.Ctx(cmd.Context())
	res, err := p.Solve(cfg.Options(*log)...)
	if err != nil {
		return err
	}
	log.Info().
		Int("pairs", len(res.Pairs)).
		Float64("total", res.TotalWeight).
		Stringer("direction", res.Direction).
		Stringer("method", cfg.Method).
		Msg("solved")

	if output == "" {
		return report.Write(cmd.OutOrStdout(), res, cfg.Format)
	}

	return writeFile(output, func(w io.Writer) error {
		return report.Write(w, res, cfg.Format)
	})
}

// writeFile creates path and runs write on it, reporting the first error of
// write or close.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return write(f)
}
