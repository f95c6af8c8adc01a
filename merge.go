package fehtpl

// Merge combines a freshly built template with a previously translated one. Every
// top-level value of old replaces the fresh value for the same key as a whole; keys only
// in old are appended in old's order, keys only in fresh stay blank. Every top-level
// object in the result is then sorted recursively. Neither input is modified.
func Merge(fresh, old *Object) *Object {
	merged := fresh.Clone()
	merged.Update(old.Clone())

	out := NewObject()
	merged.Each(func(key string, value any) {
		if child, ok := value.(*Object); ok {
			value = SortKeys(child)
		}
		out.Set(key, value)
	})
	return out
}

// MergeSummary counts how the top-level keys of a merge were resolved.
type MergeSummary struct {
	// Kept is the number of fresh keys that took their value from old.
	Kept int
	// Added is the number of fresh keys missing from old, left blank.
	Added int
	// Stale is the number of old keys no longer produced by the data files.
	Stale int
}

// Summarize reports what Merge(fresh, old) keeps, adds and carries over.
func Summarize(fresh, old *Object) MergeSummary {
	var s MergeSummary
	fresh.Each(func(key string, _ any) {
		if old.Has(key) {
			s.Kept++
		} else {
			s.Added++
		}
	})
	s.Stale = len(Stale(fresh, old))
	return s
}

// MergeSections merges a structured template one section at a time: a section found in
// both fresh and old is merged like Merge, so entries added to the data files since old
// was written are kept. Anything else follows Merge.
func MergeSections(fresh, old *Object) *Object {
	out := Merge(fresh, old)
	fresh.Each(func(key string, value any) {
		section, ok := value.(*Object)
		oldSection := old.Object(key)
		if ok && oldSection != nil {
			out.Set(key, Merge(section, oldSection))
		}
	})
	return out
}

// SummarizeSections is Summarize for structured templates, counting entries inside each
// section. A section missing from old counts all of its entries as added.
func SummarizeSections(fresh, old *Object) MergeSummary {
	var s MergeSummary
	fresh.Each(func(key string, value any) {
		section, ok := value.(*Object)
		oldSection := old.Object(key)
		switch {
		case ok && oldSection != nil:
			sub := Summarize(section, oldSection)
			s.Kept += sub.Kept
			s.Added += sub.Added
		case old.Has(key):
			s.Kept++
		case ok:
			s.Added += section.Len()
		default:
			s.Added++
		}
	})
	s.Stale = len(StaleSections(fresh, old))
	return s
}
