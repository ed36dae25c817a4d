package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/meagtan/theorem-prover/pkg/expr"
	"github.com/meagtan/theorem-prover/pkg/parser"
	"github.com/meagtan/theorem-prover/pkg/search"
)

func parseGoal(pc *search.ProofContext, src string) (expr.Expr, error) {
	return parser.Parse(pc.Sig, src)
}

// readAxiomSources reads one axiom expression per non-blank,
// non-comment line of path. A line starting with "#" is a comment.
func readAxiomSources(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var sources []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sources = append(sources, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return sources, nil
}

func readAllAxiomSources(paths []string) ([]string, error) {
	var all []string
	for _, p := range paths {
		sources, err := readAxiomSources(p)
		if err != nil {
			return nil, err
		}
		all = append(all, sources...)
	}
	return all, nil
}
