package jsontree

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
)

// Encode writes a Value to a writer.
func Encode(w io.Writer, v Value, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, pretty: fopt.Pretty, indent: fopt.Indent, escape: fopt.EscapeStrings}
	if err := wr.writeValue(v); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes a Value to a file.
func EncodeFile(path string, v Value, opt *FormatOptions) error {
	b, err := Format(v, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders a Value to bytes.
func Format(v Value, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Beautify parses a JSON document and renders it in pretty mode.
func Beautify(data []byte, opt *ParseOptions) ([]byte, error) {
	v, err := Parse(data, opt)
	if err != nil {
		return nil, err
	}

	return Format(v, &FormatOptions{Pretty: true})
}

// writer writes a Value to a writer.
type writer struct {
	w      io.Writer // Writer to write to
	indent string    // Indentation string, empty for single-line modes
	cache  []string  // Cache of indentation strings
	level  int       // Current nesting level
	pretty bool      // Pretty mode
	escape bool      // Escape strings on output
}

// writeValue writes a Value to the writer. An unrecognized kind writes
// nothing and raises no error.
func (w *writer) writeValue(v Value) error {
	switch v.Kind {
	case KindNull:
		return w.writeString("null")

	case KindBool:
		if v.Bool {
			return w.writeString("true")
		}
		return w.writeString("false")

	case KindNumber:
		return w.writeNumber(v.Num)

	case KindString:
		return w.writeQuoted(v.Str)

	case KindArray:
		return w.writeArray(v.Arr)

	case KindObject:
		return w.writeObject(v.Obj)

	default:
		return nil
	}
}

// writeArray writes an array to the writer.
func (w *writer) writeArray(vals []Value) error {
	if len(vals) == 0 {
		return w.writeString("[]")
	}

	if w.indent != "" {
		return w.writeArrayIndented(vals)
	}

	sep := ","
	if w.pretty {
		sep = ", "
	}

	if err := w.writeString("["); err != nil {
		return err
	}

	for i, v := range vals {
		if i > 0 {
			if err := w.writeString(sep); err != nil {
				return err
			}
		}
		if err := w.writeValue(v); err != nil {
			return err
		}
	}

	return w.writeString("]")
}

// writeArrayIndented writes an array with one element per line.
func (w *writer) writeArrayIndented(vals []Value) error {
	if err := w.writeString("[\n"); err != nil {
		return err
	}

	w.level++
	for i, v := range vals {
		if err := w.writeIndent(); err != nil {
			return err
		}
		if err := w.writeValue(v); err != nil {
			return err
		}
		if i < len(vals)-1 {
			if err := w.writeString(","); err != nil {
				return err
			}
		}
		if err := w.writeString("\n"); err != nil {
			return err
		}
	}
	w.level--

	if err := w.writeIndent(); err != nil {
		return err
	}

	return w.writeString("]")
}

// writeObject writes an object to the writer.
func (w *writer) writeObject(o *Object) error {
	if o.Len() == 0 {
		return w.writeString("{}")
	}

	if w.indent != "" {
		return w.writeObjectIndented(o)
	}

	// Pretty mode separates members with a newline but adds no indentation.
	sep, colon := ",", ":"
	if w.pretty {
		sep, colon = ",\n", ": "
	}

	if err := w.writeString("{"); err != nil {
		return err
	}

	for i, m := range o.Members() {
		if i > 0 {
			if err := w.writeString(sep); err != nil {
				return err
			}
		}
		if err := w.writeQuoted(m.Key); err != nil {
			return err
		}
		if err := w.writeString(colon); err != nil {
			return err
		}
		if err := w.writeValue(m.Value); err != nil {
			return err
		}
	}

	return w.writeString("}")
}

// writeObjectIndented writes an object with one member per line.
func (w *writer) writeObjectIndented(o *Object) error {
	if err := w.writeString("{\n"); err != nil {
		return err
	}

	w.level++
	members := o.Members()
	for i, m := range members {
		if err := w.writeIndent(); err != nil {
			return err
		}
		if err := w.writeQuoted(m.Key); err != nil {
			return err
		}
		if err := w.writeString(": "); err != nil {
			return err
		}
		if err := w.writeValue(m.Value); err != nil {
			return err
		}
		if i < len(members)-1 {
			if err := w.writeString(","); err != nil {
				return err
			}
		}
		if err := w.writeString("\n"); err != nil {
			return err
		}
	}
	w.level--

	if err := w.writeIndent(); err != nil {
		return err
	}

	return w.writeString("}")
}

// writeIndent writes the current indentation level to the writer.
func (w *writer) writeIndent() error {
	if w.level <= 0 {
		return nil
	}

	// Cache repeated indentation strings per nesting level.
	return w.writeString(w.indentFor(w.level))
}

// writeNumber writes a float64 value to the writer. The exponent-free form
// keeps every emitted number within the lexical grammar.
func (w *writer) writeNumber(v float64) error {
	var buf [32]byte
	b := strconv.AppendFloat(buf[:0], v, 'f', -1, 64)
	_, err := w.w.Write(b)

	return err
}

// writeQuoted writes a quoted string to the writer. Without EscapeStrings the
// content is emitted verbatim; quotes or control characters inside make the
// output invalid JSON, which is the caller's responsibility.
func (w *writer) writeQuoted(s string) error {
	if w.escape {
		s = EscapeString(s)
	}

	if err := w.writeString("\""); err != nil {
		return err
	}
	if err := w.writeString(s); err != nil {
		return err
	}

	return w.writeString("\"")
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// indentFor returns the indentation string for a nesting level.
func (w *writer) indentFor(level int) string {
	if level <= 0 {
		return ""
	}

	if len(w.cache) <= level {
		w.cache = append(w.cache, make([]string, level-len(w.cache)+1)...)
	}
	if w.cache[level] == "" {
		w.cache[level] = strings.Repeat(w.indent, level)
	}

	return w.cache[level]
}
