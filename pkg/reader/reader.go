// Package reader implements the two-token lookahead cursor the parser
// drives over the lexer's token stream.
package reader

import (
	"github.com/monkeylang/monkey/pkg/lexer"
	"github.com/monkeylang/monkey/pkg/token"
)

// Reader holds exactly two tokens, current and peek, pulled from a Lexer.
type Reader struct {
	l       *lexer.Lexer
	current token.Token
	peek    token.Token
}

// New creates a Reader positioned at the first two tokens of l.
func New(l *lexer.Lexer) *Reader {
	r := &Reader{l: l}
	r.Advance()
	r.Advance()
	return r
}

// Current returns the current token.
func (r *Reader) Current() token.Token { return r.current }

// Peek returns the lookahead token.
func (r *Reader) Peek() token.Token { return r.peek }

// Advance shifts peek into current and pulls a fresh peek from the lexer.
func (r *Reader) Advance() {
	r.current = r.peek
	r.peek = r.l.NextToken()
}

// CurrentIs reports whether the current token has the given kind.
func (r *Reader) CurrentIs(kind token.Type) bool {
	return r.current.Type == kind
}

// PeekIs reports whether the peek token has the given kind.
func (r *Reader) PeekIs(kind token.Type) bool {
	return r.peek.Type == kind
}

// ExpectPeek advances and succeeds if peek matches kind; otherwise it
// leaves the cursor unchanged and returns false.
func (r *Reader) ExpectPeek(kind token.Type) bool {
	if !r.PeekIs(kind) {
		return false
	}
	r.Advance()
	return true
}
