// SPDX-License-Identifier: MIT

// Command assign solves linear assignment problems from YAML, JSON or CSV files.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/assignment/cli"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := cli.RootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("assign failed")
		os.Exit(1)
	}
}
