package fehtpl

import "sort"

// SortKeys returns a copy of o with keys in ascending byte order at every level.
// o is not modified. Values that are not objects are left as they are.
func SortKeys(o *Object) *Object {
	keys := o.Keys()
	sort.Strings(keys)

	out := NewObject()
	for _, key := range keys {
		value, _ := o.Get(key)
		if child, ok := value.(*Object); ok {
			value = SortKeys(child)
		}
		out.Set(key, value)
	}
	return out
}

// IsSorted reports whether the keys of o are ascending at every level.
func IsSorted(o *Object) bool {
	keys := o.Keys()
	if !sort.StringsAreSorted(keys) {
		return false
	}
	for _, key := range keys {
		if child := o.Object(key); child != nil && !IsSorted(child) {
			return false
		}
	}
	return true
}
