// Package formatter implements the Monkey source pretty-printer. The CLI
// and REPL do not call it; the REPL prints results with Inspect().
//
// Unlike the teacher's formatter.Format, which independently re-derives
// precedence/parenthesization rules over its own binary-op tree, this one
// has no such rules to derive: spec §6 already pins the canonical String()
// rendering for every node type (every infix/prefix expression is fully
// parenthesized, with no precedence-sensitive elision), and that rendering
// already lives on ast.Node. Format is a thin wrapper adding the trailing
// newline a CLI write expects.
package formatter

import (
	"github.com/monkeylang/monkey/pkg/ast"
)

// Format renders program in its canonical textual form (spec §6).
func Format(program *ast.Program) string {
	return program.String() + "\n"
}

