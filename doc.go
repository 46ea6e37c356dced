/*
Package jsontree provides parsing and formatting for JSON documents as
explicit value trees.

Parsing builds a Value tagged union (null, bool, number, string, array,
object) with insertion-ordered objects and position-aware errors. Formatting
renders a Value back to text in compact, pretty, or indented form.

Reader example:

	v, err := jsontree.Parse([]byte(`{"name":"bob","age":28.5}`), nil)
	if err != nil {
		// handle error
	}

Writer example:

	out, err := jsontree.Format(v, &jsontree.FormatOptions{Pretty: true})
	if err != nil {
		// handle error
	}

Beautify example:

	out, err := jsontree.Beautify([]byte(`{"name":"bob"}`), nil)
	if err != nil {
		// handle error
	}

Validator example:

	issues := jsontree.Validate(v, nil)
	if len(issues) != 0 {
		// handle validation issues
	}

Two behaviors are deliberate and worth knowing: empty input parses to null,
and strings are emitted without escaping unless FormatOptions.EscapeStrings
is set.
*/
package jsontree
