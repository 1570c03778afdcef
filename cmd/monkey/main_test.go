package main

import (
	"bytes"
	"testing"

	"github.com/monkeylang/monkey/internal/testutil"
	"github.com/monkeylang/monkey/pkg/evaluator"
	"github.com/monkeylang/monkey/pkg/object"
	"github.com/monkeylang/monkey/pkg/parser"
)

// TestScenarios drives every fixture under testdata/scenarios through the
// exact pipeline the CLI and REPL use (parser.Parse -> evaluator.Eval) and
// checks the evaluated result's Inspect() against the fixture's expected
// string, covering spec §8's end-to-end table.
func TestScenarios(t *testing.T) {
	scenarios, err := testutil.LoadScenarios("../../testdata/scenarios")
	if err != nil {
		t.Fatalf("LoadScenarios: %v", err)
	}
	if len(scenarios) == 0 {
		t.Fatal("no scenarios loaded")
	}

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			program, err := parser.Parse(sc.Input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", sc.Input, err)
			}
			ev := evaluator.New(&bytes.Buffer{})
			result := ev.Eval(program, object.NewEnvironment())
			if got := result.Inspect(); got != sc.Expected {
				t.Errorf("input %q: Inspect() = %q, want %q", sc.Input, got, sc.Expected)
			}
		})
	}
}
