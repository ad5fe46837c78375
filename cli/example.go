// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/assignment/instance"
)

// ExampleCmd solves the built-in project-assignment sample. With --save the
// sample instance is also written as YAML, ready for "assign solve".
func ExampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Solve the built-in four-person project sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			p := instance.Example()
			if save, _ := cmd.Flags().GetString(flagSave); save != "" {
				if err = writeFile(save, func(w io.Writer) error { return p.WriteYAML(w) }); err != nil {
					return err
				}
			}

			return run(cmd, p, cfg, "")
		},
	}

	cmd.Flags().String(flagSave, "", "also write the sample instance to this YAML file")
	addSolverFlags(cmd.Flags())

	return cmd
}
