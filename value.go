package jsontree

// Kind represents the kind of a JSON value.
type Kind int

const (
	// KindNull indicates the null literal.
	KindNull Kind = iota
	// KindBool indicates true or false.
	KindBool
	// KindNumber indicates a numeric literal.
	KindNumber
	// KindString indicates a string literal.
	KindString
	// KindArray indicates an array.
	KindArray
	// KindObject indicates an object.
	KindObject
)

// Value represents a JSON value. The zero value is null.
type Value struct {
	Str  string  // String value
	Arr  []Value // Array elements
	Obj  *Object // Object members
	Num  float64 // Number value
	Kind Kind    // Value kind
	Bool bool    // Boolean value
}

// Null returns the null value.
func Null() Value {
	return Value{Kind: KindNull}
}

// Bool returns a boolean value.
func Bool(v bool) Value {
	return Value{Kind: KindBool, Bool: v}
}

// Number returns a numeric value.
func Number(v float64) Value {
	return Value{Kind: KindNumber, Num: v}
}

// String returns a string value.
func String(v string) Value {
	return Value{Kind: KindString, Str: v}
}

// Array returns an array value with the given elements.
func Array(elems ...Value) Value {
	return Value{Kind: KindArray, Arr: elems}
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}
