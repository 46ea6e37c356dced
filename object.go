package jsontree

// Member is a single key-value pair of an object.
type Member struct {
	Key   string // Member key
	Value Value  // Member value
}

// Object represents a JSON object. Members keep insertion order; setting an
// existing key overwrites the value in place (last write wins).
type Object struct {
	members []Member       // Members in insertion order
	index   map[string]int // Key to member position
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{index: map[string]int{}}
}

// Set assigns a value to a key. An existing key keeps its original position.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}

	if o.index == nil {
		o.index = map[string]int{}
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Get returns the value for a key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}

	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}

	return o.members[i].Value, true
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.members)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}

	return keys
}

// Members returns the members in insertion order. The slice is shared with
// the object and must not be modified.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}

	return o.members
}

// Value wraps the object as a Value.
func (o *Object) Value() Value {
	return Value{Kind: KindObject, Obj: o}
}
