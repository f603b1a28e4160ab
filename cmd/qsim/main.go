// SPDX-License-Identifier: MIT

// Command qsim runs a circuit program read from the file named by its first
// argument, or from standard input when there is none, and prints one
// outcome per line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "qsim:", err)
		os.Exit(2)
	}
	log := cfg.Logger(os.Stderr)

	src, err := readProgram(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read program")
	}

	res, err := circuit.New(cfg.Options(log)...).Execute(string(src))
	if err != nil {
		log.Error().Err(err).Msg("Program failed")
		os.Exit(1)
	}
	log.Info().Str("run", res.ID.String()).Int("outcomes", len(res.Outcomes)).Msg("Program finished")

	for _, o := range res.Outcomes {
		fmt.Println(o)
	}
}

func readProgram(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(args[0])
}
