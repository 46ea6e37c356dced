package jsontree

import (
	"errors"
	"strings"
	"testing"
)

// lexAll collects every token up to EOF.
func lexAll(t *testing.T, src string) []token {
	t.Helper()
	l := newLexer(strings.NewReader(src))

	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			t.Fatalf("lex %q: %v", src, err)
		}
		if tok.Type == tokEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestTokenStream(t *testing.T) {
	toks := lexAll(t, `{"a": 1}`)

	want := []token{
		{Type: tokLBrace, Lit: "{", Line: 1, Col: 1},
		{Type: tokString, Lit: "a", Line: 1, Col: 2},
		{Type: tokColon, Lit: ":", Line: 1, Col: 5},
		{Type: tokWS, Lit: " ", Line: 1, Col: 6},
		{Type: tokNumber, Lit: "1", Line: 1, Col: 7},
		{Type: tokRBrace, Lit: "}", Line: 1, Col: 8},
	}
	if len(toks) != len(want) {
		t.Fatalf("token count mismatch: got %d, want %d: %#v", len(toks), len(want), toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Fatalf("token %d mismatch: got %#v, want %#v", i, toks[i], want[i])
		}
	}
}

func TestWhitespaceTokens(t *testing.T) {
	toks := lexAll(t, " \t\n ")

	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %#v", toks)
	}
	if toks[0].Type != tokWS || toks[0].Lit != " \t" {
		t.Fatalf("expected grouped whitespace, got %#v", toks[0])
	}
	if toks[1].Type != tokNL {
		t.Fatalf("expected newline token, got %#v", toks[1])
	}
	if toks[2].Type != tokWS || toks[2].Line != 2 || toks[2].Col != 1 {
		t.Fatalf("expected whitespace on line 2, got %#v", toks[2])
	}
}

func TestStringEscapesKeptRaw(t *testing.T) {
	toks := lexAll(t, `"a\"b\\c"`)
	if len(toks) != 1 || toks[0].Type != tokString {
		t.Fatalf("expected one string token, got %#v", toks)
	}
	if toks[0].Lit != `a\"b\\c` {
		t.Fatalf("expected raw escapes, got %q", toks[0].Lit)
	}
}

func TestKeywordTokens(t *testing.T) {
	toks := lexAll(t, "true false null")

	if len(toks) != 5 {
		t.Fatalf("expected 5 tokens, got %#v", toks)
	}
	if toks[0].Type != tokBool || toks[0].Lit != "true" {
		t.Fatalf("unexpected token: %#v", toks[0])
	}
	if toks[2].Type != tokBool || toks[2].Lit != "false" {
		t.Fatalf("unexpected token: %#v", toks[2])
	}
	if toks[4].Type != tokNull {
		t.Fatalf("unexpected token: %#v", toks[4])
	}
}

func TestNumberForms(t *testing.T) {
	valid := map[string]float64{
		"0":    0,
		"10":   10,
		"28.5": 28.5,
		"-0.5": -0.5,
		"+3":   3,
		".5":   0.5,
		"-.5":  -0.5,
	}
	for src, want := range valid {
		v, err := Parse([]byte(src), nil)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if v.Kind != KindNumber || v.Num != want {
			t.Fatalf("parse %q: got %#v, want %v", src, v, want)
		}
	}

	invalid := []string{"5.", "1.2.3", "+", "-", ".", "--1", "+.", "1..2"}
	for _, src := range invalid {
		if _, err := Parse([]byte(src), nil); !errors.Is(err, ErrLex) {
			t.Fatalf("expected lex error for %q, got %v", src, err)
		}
	}
}

func TestStringErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"abc`, "unterminated string"},
		{"\"ab\ncd\"", "newline in string"},
		{`"a\nb"`, "invalid escape"},
		{`"ab\`, "unterminated string"},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.src), nil)
		if !errors.Is(err, ErrLex) || !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("parse %q: expected %q error, got %v", tt.src, tt.want, err)
		}
	}
}

func TestUnexpectedInput(t *testing.T) {
	_, err := Parse([]byte("not"), nil)
	if !errors.Is(err, ErrLex) || !strings.Contains(err.Error(), "unexpected token") {
		t.Fatalf("expected unexpected token error, got %v", err)
	}

	_, err = Parse([]byte("\n\n  @"), nil)
	if !errors.Is(err, ErrLex) || !strings.Contains(err.Error(), "at 3:3") {
		t.Fatalf("expected position 3:3, got %v", err)
	}
}

func TestByteOrderMarkSkipped(t *testing.T) {
	v, err := Parse([]byte("\ufeff{}"), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v.Kind != KindObject || v.Obj.Len() != 0 {
		t.Fatalf("expected empty object, got %#v", v)
	}
}
