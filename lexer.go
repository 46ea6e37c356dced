package jsontree

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// tokenType represents a type of a token.
type tokenType int

// token types.
const (
	tokEOF      tokenType = iota // End of input
	tokWS                        // Run of spaces and tabs
	tokNL                        // Newline
	tokNumber                    // Number
	tokString                    // String
	tokLBrace                    // Left brace
	tokRBrace                    // Right brace
	tokLBracket                  // Left bracket
	tokRBracket                  // Right bracket
	tokComma                     // Comma
	tokColon                     // Colon
	tokNull                      // null keyword
	tokBool                      // true or false keyword
)

// token represents a token in the JSON text.
type token struct {
	Lit  string    // Literal value of the token
	Type tokenType // Type of the token
	Line int       // Line number of the token
	Col  int       // Column number of the token
}

// lexer represents a lexer for JSON text.
type lexer struct {
	r   *bufio.Reader // Reader for the input
	pos position      // Position of the current character
	ch  rune          // Current character
	eof bool          // End of input
}

// position represents a position in the input.
type position struct {
	line int // Line number
	col  int // Column number
}

// newLexer creates a new lexer for JSON text.
func newLexer(r io.Reader) *lexer {
	l := &lexer{r: bufio.NewReader(r), pos: position{line: 1, col: 0}}
	l.read()
	if l.ch == 0xFEFF {
		// Skip UTF-8 BOM if present.
		l.read()
	}

	return l
}

// next returns the next token from the JSON text. Whitespace and newlines are
// real tokens; the parser skips them.
func (l *lexer) next() (token, error) {
	if l.eof {
		return token{Type: tokEOF, Line: l.pos.line, Col: l.pos.col}, nil
	}

	startLine, startCol := l.pos.line, l.pos.col

	switch l.ch {
	case '{':
		l.read()
		return token{Type: tokLBrace, Lit: "{", Line: startLine, Col: startCol}, nil
	case '}':
		l.read()
		return token{Type: tokRBrace, Lit: "}", Line: startLine, Col: startCol}, nil
	case '[':
		l.read()
		return token{Type: tokLBracket, Lit: "[", Line: startLine, Col: startCol}, nil
	case ']':
		l.read()
		return token{Type: tokRBracket, Lit: "]", Line: startLine, Col: startCol}, nil
	case ',':
		l.read()
		return token{Type: tokComma, Lit: ",", Line: startLine, Col: startCol}, nil
	case ':':
		l.read()
		return token{Type: tokColon, Lit: ":", Line: startLine, Col: startCol}, nil
	case '\n':
		l.read()
		return token{Type: tokNL, Lit: "\n", Line: startLine, Col: startCol}, nil
	case ' ', '\t':
		lit := l.readSpaces()
		return token{Type: tokWS, Lit: lit, Line: startLine, Col: startCol}, nil
	case '"':
		lit, err := l.readString()
		return token{Type: tokString, Lit: lit, Line: startLine, Col: startCol}, err

	default:
		if isKeywordStart(l.ch) {
			lit := l.readKeyword()
			if lit == "null" {
				return token{Type: tokNull, Lit: lit, Line: startLine, Col: startCol}, nil
			}
			if lit == "true" || lit == "false" {
				return token{Type: tokBool, Lit: lit, Line: startLine, Col: startCol}, nil
			}

			return token{}, l.errorf("unexpected token %q", lit)
		}

		if isNumberStart(l.ch) {
			// Read the whole numeric word first, then validate; "1.2.3" is a
			// single malformed number rather than two adjacent tokens.
			lit := l.readNumberWord()
			if !isValidNumber(lit) {
				return token{}, l.errorf("malformed number %q", lit)
			}

			return token{Type: tokNumber, Lit: lit, Line: startLine, Col: startCol}, nil
		}

		return token{}, l.errorf("unexpected character '%c'", l.ch)
	}
}

// read reads the next character from the input.
func (l *lexer) read() {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		l.eof = true
		l.ch = 0
		return
	}

	if ch == '\n' {
		l.pos.line++
		l.pos.col = 0
	} else {
		l.pos.col++
	}

	l.ch = ch
}

// peek returns the next character from the input without consuming it.
func (l *lexer) peek() rune {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		return 0
	}

	_ = l.r.UnreadRune()
	return ch
}

// readSpaces reads a run of spaces and tabs.
func (l *lexer) readSpaces() string {
	var b strings.Builder
	for l.ch == ' ' || l.ch == '\t' {
		b.WriteRune(l.ch)
		l.read()
		if l.eof {
			break
		}
	}

	return b.String()
}

// readKeyword reads a run of letters.
func (l *lexer) readKeyword() string {
	var b strings.Builder
	for isKeywordStart(l.ch) {
		b.WriteRune(l.ch)
		l.read()
		if l.eof {
			break
		}
	}

	return b.String()
}

// readNumberWord reads a numeric word: an optional leading sign, then digits
// and decimal points. Validation happens in isValidNumber.
func (l *lexer) readNumberWord() string {
	var b strings.Builder
	if l.ch == '+' || l.ch == '-' {
		b.WriteRune(l.ch)
		l.read()
	}

	for !l.eof && (isDigit(l.ch) || l.ch == '.') {
		b.WriteRune(l.ch)
		l.read()
	}

	return b.String()
}

// readString reads a string literal. The surrounding quotes are stripped;
// the recognized escapes \" and \\ are kept raw, with no unescaping.
func (l *lexer) readString() (string, error) {
	l.read() // consume opening quote
	var b strings.Builder
	for {
		if l.eof {
			return "", l.errorf("unterminated string")
		}
		if l.ch == '\n' {
			return "", l.errorf("newline in string")
		}

		if l.ch == '"' {
			l.read()
			break
		}

		if l.ch == '\\' {
			next := l.peek()
			if next != '\\' && next != '"' {
				if next == 0 {
					l.read()
					return "", l.errorf("unterminated string")
				}
				return "", l.errorf("invalid escape '\\%c'", next)
			}

			b.WriteRune(l.ch)
			l.read()
			b.WriteRune(l.ch)
			l.read()
			continue
		}

		b.WriteRune(l.ch)
		l.read()
	}

	return b.String(), nil
}

// errorf formats an error message and returns an error.
func (l *lexer) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrLex, l.pos.line, l.pos.col, fmt.Sprintf(format, args...))
}

// isKeywordStart checks if a character can start a keyword.
func isKeywordStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isNumberStart checks if a character can start a number.
func isNumberStart(r rune) bool {
	return isDigit(r) || r == '+' || r == '-' || r == '.'
}

// isDigit checks if a character is an ASCII digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isValidNumber checks a numeric word against the form [+-]?(\d*\.)?\d+.
func isValidNumber(s string) bool {
	if s == "" {
		return false
	}

	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}

	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		i++
		frac := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			frac++
		}

		return i == len(s) && frac > 0
	}

	return i == len(s) && digits > 0
}
