package jsontree

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Parse parses a JSON document from bytes.
func Parse(data []byte, opt *ParseOptions) (Value, error) {
	return Decode(bytes.NewReader(data), opt)
}

// Decode parses a JSON document from a reader.
func Decode(r io.Reader, opt *ParseOptions) (Value, error) {
	popt := opt.normalize()
	br := bufio.NewReader(r)
	if isBinaryInput(br) {
		return Value{}, ErrBinaryData
	}

	p := newParser(br, popt)
	return p.parseDocument()
}

// DecodeFile parses a JSON document from a file.
func DecodeFile(path string, opt *ParseOptions) (Value, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Value{}, err
	}
	return Parse(b, opt)
}

// parser represents a parser for a JSON document.
type parser struct {
	l   *lexer       // Lexer for the JSON text
	buf token        // Buffered token
	has bool         // Has buffered token
	opt ParseOptions // Options for the parser
}

// newParser creates a new parser for a JSON document.
func newParser(r io.Reader, opt ParseOptions) *parser {
	return &parser{l: newLexer(r), opt: opt}
}

// next returns the next token, skipping whitespace and newline tokens.
func (p *parser) next() (token, error) {
	for {
		tok, err := p.nextRaw()
		if err != nil {
			return tok, err
		}

		if tok.Type == tokWS || tok.Type == tokNL {
			continue
		}

		return tok, nil
	}
}

// peek returns the next token without consuming it, skipping whitespace and
// newline tokens.
func (p *parser) peek() (token, error) {
	if p.has {
		return p.buf, nil
	}

	tok, err := p.next()
	if err != nil {
		return tok, err
	}

	p.buf = tok
	p.has = true
	return tok, nil
}

// nextRaw returns the next token including whitespace and newlines.
func (p *parser) nextRaw() (token, error) {
	if p.has {
		p.has = false
		return p.buf, nil
	}

	return p.l.next()
}

// parseDocument parses the top-level value of a JSON document.
func (p *parser) parseDocument() (Value, error) {
	tok, err := p.peek()
	if err != nil {
		return Value{}, err
	}

	// Empty or whitespace-only input parses to null.
	if tok.Type == tokEOF {
		return Null(), nil
	}

	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}

	if p.opt.DisableTrailingData {
		tok, err := p.next()
		if err != nil {
			return Value{}, err
		}
		if tok.Type != tokEOF {
			return Value{}, p.errorf(tok, "trailing data after value")
		}
	}

	return v, nil
}

// parseValue parses a single value.
func (p *parser) parseValue() (Value, error) {
	tok, err := p.next()
	if err != nil {
		return Value{}, err
	}

	switch tok.Type {
	case tokNull:
		return Null(), nil

	case tokBool:
		return Bool(tok.Lit == "true"), nil

	case tokNumber:
		f, err := strconv.ParseFloat(tok.Lit, 64)
		if err != nil {
			return Value{}, p.errorf(tok, "invalid number")
		}
		return Number(f), nil

	case tokString:
		return String(tok.Lit), nil

	case tokLBracket:
		return p.parseArray()

	case tokLBrace:
		return p.parseObject()

	case tokEOF:
		return Value{}, p.errorf(tok, "unexpected end of input")

	default:
		return Value{}, p.errorf(tok, "unexpected token %q", tok.Lit)
	}
}

// parseArray parses an array after the opening bracket was consumed.
func (p *parser) parseArray() (Value, error) {
	var arr []Value

	tok, err := p.peek()
	if err != nil {
		return Value{}, err
	}

	switch tok.Type {
	case tokRBracket:
		_, _ = p.next()
		return Value{Kind: KindArray, Arr: arr}, nil
	case tokEOF:
		if p.opt.DisableLenientEOF {
			return Value{}, p.errorf(tok, "unexpected end of input in array")
		}
		// Input exhausted mid-array yields the partial array.
		return Value{Kind: KindArray, Arr: arr}, nil
	}

	for {
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}

		arr = append(arr, v)
		tok, err := p.next()
		if err != nil {
			return Value{}, err
		}

		switch tok.Type {
		case tokRBracket:
			return Value{Kind: KindArray, Arr: arr}, nil

		case tokComma:
			// A comma must be followed by a value; a closing bracket here is
			// rejected by parseValue (no trailing commas).
			nt, err := p.peek()
			if err != nil {
				return Value{}, err
			}
			if nt.Type == tokEOF {
				if p.opt.DisableLenientEOF {
					return Value{}, p.errorf(nt, "unexpected end of input in array")
				}
				return Value{Kind: KindArray, Arr: arr}, nil
			}

		case tokEOF:
			if p.opt.DisableLenientEOF {
				return Value{}, p.errorf(tok, "unexpected end of input in array")
			}
			return Value{Kind: KindArray, Arr: arr}, nil

		default:
			return Value{}, p.errorf(tok, "expected ',' or ']' in array")
		}
	}
}

// parseObject parses an object after the opening brace was consumed.
func (p *parser) parseObject() (Value, error) {
	obj := NewObject()

	tok, err := p.peek()
	if err != nil {
		return Value{}, err
	}

	switch tok.Type {
	case tokRBrace:
		_, _ = p.next()
		return obj.Value(), nil
	case tokEOF:
		if p.opt.DisableLenientEOF {
			return Value{}, p.errorf(tok, "unexpected end of input in object")
		}
		// Input exhausted mid-object yields the partial object.
		return obj.Value(), nil
	}

	for {
		keyTok, err := p.next()
		if err != nil {
			return Value{}, err
		}
		if keyTok.Type == tokEOF {
			if p.opt.DisableLenientEOF {
				return Value{}, p.errorf(keyTok, "unexpected end of input in object")
			}
			return obj.Value(), nil
		}
		if keyTok.Type != tokString {
			return Value{}, p.errorf(keyTok, "expected string key")
		}

		colTok, err := p.next()
		if err != nil {
			return Value{}, err
		}
		if colTok.Type == tokEOF {
			if p.opt.DisableLenientEOF {
				return Value{}, p.errorf(colTok, "unexpected end of input in object")
			}
			return obj.Value(), nil
		}
		if colTok.Type != tokColon {
			return Value{}, p.errorf(colTok, "expected ':' after key")
		}

		nt, err := p.peek()
		if err != nil {
			return Value{}, err
		}
		if nt.Type == tokEOF {
			if p.opt.DisableLenientEOF {
				return Value{}, p.errorf(nt, "unexpected end of input in object")
			}
			// The dangling key is dropped with the value missing.
			return obj.Value(), nil
		}

		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}

		obj.Set(keyTok.Lit, v)

		tok, err := p.next()
		if err != nil {
			return Value{}, err
		}

		switch tok.Type {
		case tokRBrace:
			return obj.Value(), nil

		case tokComma:
			// Loop expects the next member's key.

		case tokEOF:
			if p.opt.DisableLenientEOF {
				return Value{}, p.errorf(tok, "unexpected end of input in object")
			}
			return obj.Value(), nil

		default:
			return Value{}, p.errorf(tok, "expected ',' or '}' in object")
		}
	}
}

// errorf formats an error.
func (p *parser) errorf(tok token, format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrParse, tok.Line, tok.Col, fmt.Sprintf(format, args...))
}

// isBinaryInput checks if the input looks like binary data.
func isBinaryInput(r *bufio.Reader) bool {
	// JSON text never contains zero bytes; binary blobs do early on.
	peek, err := r.Peek(4096)
	if err != nil && len(peek) == 0 {
		return false
	}

	for _, b := range peek {
		if b == 0x00 {
			return true
		}
	}

	return false
}
