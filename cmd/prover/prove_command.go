package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	"github.com/meagtan/theorem-prover/pkg/env"
	"github.com/meagtan/theorem-prover/pkg/printer"
	"github.com/meagtan/theorem-prover/pkg/rules"
	"github.com/meagtan/theorem-prover/pkg/search"
)

// ProveCommand implements `prover prove "<expr>"`: it loads the default
// environment (extended by any --load axiom files), parses the goal
// expression and runs the search driver, per spec.md §6.3.
type ProveCommand struct {
	UI     cli.Ui
	Logger hclog.Logger
}

func (c *ProveCommand) Synopsis() string {
	return "Prove a single statement over the default Peano environment"
}

func (c *ProveCommand) Help() string {
	return strings.TrimSpace(`
Usage: prover prove [options] "<expr>"

  Parses <expr> against the default signature and runs the proof search
  driver against it, printing the resulting proof (or the reason it
  wasn't found).

Options:

  --epsilon <float>   Weighted-A* inflation factor, must be >= 1 (default 1)
  --load <file>       Additional axiom source file (repeatable)
  --config <file>     YAML signature/axiom config, replacing the
                       built-in default Peano environment entirely
`)
}

func (c *ProveCommand) Run(args []string) int {
	fs := flag.NewFlagSet("prove", flag.ContinueOnError)
	epsilon := fs.Float64("epsilon", 1, "weighted-A* inflation factor, >= 1")
	configFile := fs.String("config", "", "YAML signature/axiom config, replacing the default environment")
	var loadFiles stringSliceFlag
	fs.Var(&loadFiles, "load", "additional axiom source file (repeatable)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *epsilon < 1 {
		c.UI.Error("--epsilon must be >= 1 (weighted-A* requires an admissible-or-inflated bound)")
		return 2
	}

	rest := fs.Args()
	if len(rest) != 1 {
		c.UI.Error(c.Help())
		return 2
	}

	// Tags every log line this invocation emits, so concurrent `prove`
	// runs piped through the same log sink (or log aggregator) can be
	// told apart — the search algorithm itself never sees or uses it.
	runLogger := c.Logger.With("run_id", uuid.New().String())

	extra, err := readAllAxiomSources(loadFiles)
	if err != nil {
		c.UI.Error(err.Error())
		return 2
	}

	cfg := env.DefaultPeanoConfig()
	if *configFile != "" {
		cfg, err = env.LoadConfigFile(*configFile)
		if err != nil {
			c.UI.Error(err.Error())
			return 2
		}
	}

	pc, err := env.Load(cfg, extra, runLogger)
	if err != nil {
		c.UI.Error(fmt.Sprintf("environment: %s", err))
		return 2
	}

	goal, err := parseGoal(pc, rest[0])
	if err != nil {
		c.UI.Error(fmt.Sprintf("syntax error: %s", err))
		return 2
	}

	runLogger.Info("search starting", "goal", printer.Print(goal), "epsilon", *epsilon)
	proof, outcome, err := search.Prove(context.Background(), pc, goal, *epsilon)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	runLogger.Info("search finished", "outcome", outcome.String())

	switch outcome {
	case search.Proved:
		c.UI.Output(color.GreenString("proved: %s", printer.Print(goal)))
		for i, step := range proof {
			c.UI.Output(fmt.Sprintf("  %d. %s  %s", i+1, describeApplied(step.Applied), printer.Print(step.Result)))
		}
		return 0
	case search.Exhausted:
		c.UI.Output(color.RedString("exhausted: no proof found for %s", printer.Print(goal)))
		return 1
	default: // search.Aborted
		c.UI.Output(color.RedString("aborted: search was cancelled"))
		return 1
	}
}

// describeApplied labels a proof step with how it was derived: green
// for a rewrite/axiom application, cyan for an induction step.
func describeApplied(a rules.Applied) string {
	switch a.Kind {
	case rules.InductionStep:
		return color.CyanString("induction on %s:", a.Variable)
	default:
		return color.GreenString("via %s:", printer.Print(a.Rule))
	}
}
