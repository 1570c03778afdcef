// Package diagnostics renders parser failures for the CLI/REPL. The core
// lexer/parser/evaluator never import this package: Parse returns plain Go
// errors (spec §4.3, §7), and diagnostics.FromError wraps one at the
// boundary where a human needs to read it.
package diagnostics

import (
	"fmt"

	"github.com/monkeylang/monkey/pkg/parser"
	"github.com/monkeylang/monkey/pkg/token"
)

// Diagnostic code constants, trimmed to lexing and parsing — unlike the
// teacher's 20+ codes spanning capabilities, tools, and budgets, none of
// which have an analogue in a pure expression evaluator. FromError only
// produces EParse: the lexer reports malformed input as ILLEGAL tokens, not
// as errors, so nothing in the interpreter produces ELex.
const (
	ELex   = "E_LEX"
	EParse = "E_PARSE"
)

// Diagnostic is a code, a human message, and an optional source position.
type Diagnostic struct {
	Code    string
	Message string
	Pos     *token.Pos
}

// MakeDiag creates a Diagnostic.
func MakeDiag(code, message string, pos *token.Pos) Diagnostic {
	return Diagnostic{Code: code, Message: message, Pos: pos}
}

// FromError classifies a parser.Parse error into a Diagnostic. Every error
// parser.Parse can return is one of the typed kinds below; any other error
// type falls back to EParse with no position.
func FromError(err error) Diagnostic {
	switch e := err.(type) {
	case *parser.UnexpectedTokenError:
		return MakeDiag(EParse, e.Error(), nil)
	case *parser.NoPrefixParseError:
		return MakeDiag(EParse, e.Error(), nil)
	case *parser.InvalidIntegerError:
		return MakeDiag(EParse, e.Error(), nil)
	default:
		return MakeDiag(EParse, err.Error(), nil)
	}
}

// Format renders a single diagnostic for display.
func Format(d Diagnostic) string {
	if d.Pos != nil {
		return fmt.Sprintf("%s:%d: %s", d.Code, d.Pos.Line, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}
