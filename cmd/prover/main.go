// Command prover is the CLI front end of spec.md §6.3: it loads the
// default Peano environment (plus any axiom files given via --load),
// parses a goal expression and runs the proof search driver against it.
package main

import (
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
)

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "prover",
		Level:  hclog.LevelFromString(os.Getenv("PROVER_LOG_LEVEL")),
		Output: os.Stderr,
	})

	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := cli.NewCLI("prover", "0.1.0")
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"prove": func() (cli.Command, error) {
			return &ProveCommand{UI: ui, Logger: logger.Named("prove")}, nil
		},
		"load": func() (cli.Command, error) {
			return &LoadCommand{UI: ui, Logger: logger.Named("load")}, nil
		},
	}

	status, err := c.Run()
	if err != nil {
		logger.Error("cli run failed", "error", err)
		os.Exit(2)
	}
	os.Exit(status)
}
