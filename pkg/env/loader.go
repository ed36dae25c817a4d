package env

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/meagtan/theorem-prover/pkg/parser"
	"github.com/meagtan/theorem-prover/pkg/search"
)

// Load builds a search.ProofContext from cfg: it constructs and
// validates the signature, then parses cfg.Axioms followed by
// extraAxiomSources (additional sources supplied e.g. via the CLI's
// repeatable --load flag) in order, appending each to the resulting rule
// store.
//
// Signature construction errors are all structural and independent of
// each other, so Validate's findings are aggregated with
// github.com/hashicorp/go-multierror and reported together. Axiom
// parsing is different: it aborts at the first parse error instead, per
// spec.md §6.2/§7. Each source is parsed against the signature alone
// and is not type-checked; axioms already appended stay in the
// discarded context.
func Load(cfg Config, extraAxiomSources []string, logger hclog.Logger) (*search.ProofContext, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	sig := cfg.Signature()
	if errs := sig.Validate(); len(errs) > 0 {
		var result error
		for _, e := range errs {
			result = multierror.Append(result, e)
		}
		return nil, result
	}
	logger.Debug("signature validated", "literals", len(cfg.Literals), "types", len(cfg.Types))

	pc := search.NewProofContext(sig)

	sources := make([]string, 0, len(cfg.Axioms)+len(extraAxiomSources))
	sources = append(sources, cfg.Axioms...)
	sources = append(sources, extraAxiomSources...)

	for i, src := range sources {
		rule, err := parser.Parse(sig, src)
		if err != nil {
			return nil, fmt.Errorf("axiom %d (%q): %w", i, src, err)
		}
		pc.Store.Append(rule)
		logger.Trace("axiom loaded", "index", i, "source", src)
	}
	logger.Info("environment loaded", "axioms", len(sources))

	return pc, nil
}
