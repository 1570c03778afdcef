package lexer

import (
	"testing"

	"github.com/monkeylang/monkey/pkg/token"
)

// mustTokens drains l to EOF, inclusive, and returns the sequence.
func mustTokens(l *Lexer) []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func TestNextTokenBasic(t *testing.T) {
	input := `=+(){},;`

	want := []token.Type{
		token.ASSIGN, token.PLUS, token.LPAREN, token.RPAREN,
		token.LBRACE, token.RBRACE, token.COMMA, token.SEMICOLON, token.EOF,
	}

	l := New(input)
	for i, wantType := range want {
		tok := l.NextToken()
		if tok.Type != wantType {
			t.Fatalf("token %d: Type = %s, want %s", i, tok.Type, wantType)
		}
	}
}

func TestNextTokenFullProgram(t *testing.T) {
	input := `let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
"foobar"
"foo bar"
[1, 2];
{"foo": "bar"}
macro(x, y) { x + y; };
`

	type want struct {
		typ     token.Type
		literal string
	}

	wants := []want{
		{token.LET, "let"}, {token.IDENT, "five"}, {token.ASSIGN, "="}, {token.INT, "5"}, {token.SEMICOLON, ";"},
		{token.LET, "let"}, {token.IDENT, "ten"}, {token.ASSIGN, "="}, {token.INT, "10"}, {token.SEMICOLON, ";"},
		{token.LET, "let"}, {token.IDENT, "add"}, {token.ASSIGN, "="}, {token.FUNCTION, "fn"},
		{token.LPAREN, "("}, {token.IDENT, "x"}, {token.COMMA, ","}, {token.IDENT, "y"}, {token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"}, {token.PLUS, "+"}, {token.IDENT, "y"}, {token.SEMICOLON, ";"},
		{token.RBRACE, "}"}, {token.SEMICOLON, ";"},
		{token.LET, "let"}, {token.IDENT, "result"}, {token.ASSIGN, "="}, {token.IDENT, "add"},
		{token.LPAREN, "("}, {token.IDENT, "five"}, {token.COMMA, ","}, {token.IDENT, "ten"}, {token.RPAREN, ")"}, {token.SEMICOLON, ";"},
		{token.BANG, "!"}, {token.MINUS, "-"}, {token.SLASH, "/"}, {token.ASTERISK, "*"}, {token.INT, "5"}, {token.SEMICOLON, ";"},
		{token.INT, "5"}, {token.LT, "<"}, {token.INT, "10"}, {token.GT, ">"}, {token.INT, "5"}, {token.SEMICOLON, ";"},
		{token.IF, "if"}, {token.LPAREN, "("}, {token.INT, "5"}, {token.LT, "<"}, {token.INT, "10"}, {token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"}, {token.TRUE, "true"}, {token.SEMICOLON, ";"},
		{token.RBRACE, "}"}, {token.ELSE, "else"}, {token.LBRACE, "{"},
		{token.RETURN, "return"}, {token.FALSE, "false"}, {token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.INT, "10"}, {token.EQ, "=="}, {token.INT, "10"}, {token.SEMICOLON, ";"},
		{token.INT, "10"}, {token.NOT_EQ, "!="}, {token.INT, "9"}, {token.SEMICOLON, ";"},
		{token.STRING, "foobar"},
		{token.STRING, "foo bar"},
		{token.LBRACKET, "["}, {token.INT, "1"}, {token.COMMA, ","}, {token.INT, "2"}, {token.RBRACKET, "]"}, {token.SEMICOLON, ";"},
		{token.LBRACE, "{"}, {token.STRING, "foo"}, {token.COLON, ":"}, {token.STRING, "bar"}, {token.RBRACE, "}"},
		{token.MACRO, "macro"}, {token.LPAREN, "("}, {token.IDENT, "x"}, {token.COMMA, ","}, {token.IDENT, "y"}, {token.RPAREN, ")"},
		{token.LBRACE, "{"}, {token.IDENT, "x"}, {token.PLUS, "+"}, {token.IDENT, "y"}, {token.SEMICOLON, ";"}, {token.RBRACE, "}"}, {token.SEMICOLON, ";"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, w := range wants {
		tok := l.NextToken()
		if tok.Type != w.typ {
			t.Fatalf("token %d: Type = %s, want %s (literal %q)", i, tok.Type, w.typ, tok.Literal)
		}
		if tok.Literal != w.literal {
			t.Fatalf("token %d: Literal = %q, want %q", i, tok.Literal, w.literal)
		}
	}
}

func TestEmptyInputYieldsOnlyEOF(t *testing.T) {
	l := New("")
	tok := l.NextToken()
	if tok.Type != token.EOF {
		t.Fatalf("Type = %s, want EOF", tok.Type)
	}
}

func TestEOFIsPermanent(t *testing.T) {
	l := New("")
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != token.EOF {
			t.Fatalf("call %d: Type = %s, want EOF", i, tok.Type)
		}
	}
}

func TestIllegalToken(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("Type = %s, want ILLEGAL", tok.Type)
	}
	if tok.Literal != "@" {
		t.Fatalf("Literal = %q, want %q", tok.Literal, "@")
	}
}

func TestUnterminatedStringRunsToEOF(t *testing.T) {
	l := New(`"abc`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("Type = %s, want STRING", tok.Type)
	}
	if tok.Literal != "abc" {
		t.Fatalf("Literal = %q, want %q", tok.Literal, "abc")
	}
	if eof := l.NextToken(); eof.Type != token.EOF {
		t.Fatalf("following token Type = %s, want EOF", eof.Type)
	}
}

func TestStringWithEmbeddedNewline(t *testing.T) {
	l := New("\"a\nb\"")
	tok := l.NextToken()
	if tok.Type != token.STRING || tok.Literal != "a\nb" {
		t.Fatalf("got %v, want STRING %q", tok, "a\nb")
	}
}

func TestKeywordVsIdentifier(t *testing.T) {
	toks := mustTokens(New("let letter fn function"))
	want := []token.Type{token.LET, token.IDENT, token.FUNCTION, token.IDENT, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d: Type = %s, want %s", i, toks[i].Type, w)
		}
	}
}
