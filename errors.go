package jsontree

import "errors"

var (
	// ErrBinaryData indicates the input is not JSON text (likely binary data).
	ErrBinaryData = errors.New("binary data")

	// ErrLex indicates a lexer failure.
	ErrLex = errors.New("lex error")

	// ErrParse indicates a parser failure.
	ErrParse = errors.New("parse error")
)
