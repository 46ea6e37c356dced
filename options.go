package jsontree

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// DisableLenientEOF makes input exhaustion inside an array or object a
	// parse error instead of silently truncating the container.
	DisableLenientEOF bool
	// DisableTrailingData makes non-whitespace input after the top-level
	// value a parse error instead of being ignored.
	DisableTrailingData bool
}

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Indent enables fully indented multi-line output with the given
	// indentation string. Takes precedence over Pretty.
	Indent string
	// Pretty adds a space after ':' and array commas, and a newline between
	// object members, without nested indentation.
	Pretty bool
	// EscapeStrings escapes quotes, backslashes, and control characters in
	// emitted strings and keys. Off by default: output mirrors parsed string
	// content verbatim.
	EscapeStrings bool
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// MaxDepth is the nesting depth above which deep_nesting is reported
	// (default is 128).
	MaxDepth int
	// DisableStringCheck disables warnings for strings and keys that would
	// serialize to invalid JSON without EscapeStrings.
	DisableStringCheck bool
	// DisableNumberCheck disables errors for NaN and infinite numbers.
	DisableNumberCheck bool
	// DisableDepthCheck disables the nesting depth check.
	DisableDepthCheck bool
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	if o == nil {
		return ParseOptions{}
	}

	return *o
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{}
	}

	return *o
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{MaxDepth: 128}
	}

	out := *o
	if out.MaxDepth <= 0 {
		out.MaxDepth = 128
	}

	return out
}
