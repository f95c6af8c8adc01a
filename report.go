package fehtpl

import (
	"sort"

	"github.com/samber/lo"
)

// Untranslated lists the blank string fields of a template as "entry.field" paths, or
// "entry" for a blank top-level string. Nested sections of a structured template are
// walked too, giving "SECTION.entry.field". The result is sorted.
func Untranslated(o *Object) []string {
	var paths []string
	collectBlank(o, "", &paths)
	sort.Strings(paths)
	return paths
}

func collectBlank(o *Object, prefix string, paths *[]string) {
	o.Each(func(key string, value any) {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch t := value.(type) {
		case string:
			if t == "" {
				*paths = append(*paths, path)
			}
		case *Object:
			collectBlank(t, path, paths)
		}
	})
}

// Stale lists the top-level keys of old that fresh no longer has, in old's order.
func Stale(fresh, old *Object) []string {
	return lo.Filter(old.Keys(), func(key string, _ int) bool {
		return !fresh.Has(key)
	})
}

// Missing lists the top-level keys of fresh that old lacks, in fresh's order.
func Missing(fresh, old *Object) []string {
	return Stale(old, fresh)
}

// MissingSections is Missing for structured templates: entries are reported as
// "SECTION.entry", a section absent from old as "SECTION".
func MissingSections(fresh, old *Object) []string {
	return sectionDiff(fresh, old, Missing)
}

// StaleSections is Stale for structured templates: entries are reported as
// "SECTION.entry", a section no longer built as "SECTION".
func StaleSections(fresh, old *Object) []string {
	return sectionDiff(old, fresh, func(a, b *Object) []string { return Stale(b, a) })
}

// sectionDiff walks the sections of a and applies diff to each one b also has.
func sectionDiff(a, b *Object, diff func(a, b *Object) []string) []string {
	paths := []string{}
	a.Each(func(key string, value any) {
		if !b.Has(key) {
			paths = append(paths, key)
			return
		}
		section, ok := value.(*Object)
		other := b.Object(key)
		if !ok || other == nil {
			return
		}
		paths = append(paths, lo.Map(diff(section, other), func(entry string, _ int) string {
			return key + "." + entry
		})...)
	})
	return paths
}
