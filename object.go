package fehtpl

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a JSON object that remembers the order its keys were inserted in.
//
// Values are string, *Object, json.Number, bool, nil or []any. Templates only ever
// hold strings and objects; the other kinds are carried through from translated files.
type Object struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{m: orderedmap.New[string, any]()}
}

// Set stores value under key. An existing key keeps its position.
func (o *Object) Set(key string, value any) {
	o.m.Set(key, value)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	return o.m.Get(key)
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.m.Get(key)
	return ok
}

// Object returns the nested object stored under key, or nil when the key is absent
// or holds something else.
func (o *Object) Object(key string) *Object {
	v, ok := o.m.Get(key)
	if !ok {
		return nil
	}
	child, _ := v.(*Object)
	return child
}

func (o *Object) Delete(key string) {
	o.m.Delete(key)
}

func (o *Object) Len() int {
	if o == nil || o.m == nil {
		return 0
	}
	return o.m.Len()
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	o.Each(func(key string, _ any) {
		keys = append(keys, key)
	})
	return keys
}

// Each calls fn for every pair in insertion order.
func (o *Object) Each(fn func(key string, value any)) {
	if o == nil || o.m == nil {
		return
	}
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Update sets every pair of other on o, in other's order.
func (o *Object) Update(other *Object) {
	other.Each(func(key string, value any) {
		o.Set(key, value)
	})
}

// Clone returns a deep copy. Nested objects and arrays are copied, scalars shared.
func (o *Object) Clone() *Object {
	out := NewObject()
	o.Each(func(key string, value any) {
		out.Set(key, cloneValue(value))
	})
	return out
}

func cloneValue(value any) any {
	switch t := value.(type) {
	case *Object:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, v := range t {
			out[i] = cloneValue(v)
		}
		return out
	default:
		return value
	}
}

// Equal reports whether o and other hold the same pairs in the same order.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	okeys, pkeys := o.Keys(), other.Keys()
	for i, key := range okeys {
		if pkeys[i] != key {
			return false
		}
		a, _ := o.Get(key)
		b, _ := other.Get(key)
		if !equalValue(a, b) {
			return false
		}
	}
	return true
}

func equalValue(a, b any) bool {
	switch ta := a.(type) {
	case *Object:
		tb, ok := b.(*Object)
		return ok && ta.Equal(tb)
	case []any:
		tb, ok := b.([]any)
		if !ok || len(ta) != len(tb) {
			return false
		}
		for i := range ta {
			if !equalValue(ta[i], tb[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
