package fehtpl

import (
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Builder turns the English data files into a blank translation template.
type Builder struct {
	cfg Config
	src Source
	log *logrus.Entry
}

// block is one sorted group of blank entries together with its structured-layout key.
type block struct {
	key     string
	label   string
	entries *Object
}

func NewBuilder(cfg Config) *Builder {
	if cfg.Collisions == "" {
		cfg.Collisions = CollisionWarn
	}
	src := cfg.Source
	if src == nil {
		dir := cfg.DataDir
		if dir == "" {
			dir = "data"
		}
		src = DirSource(dir)
	}
	log := cfg.Log
	if log == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		log = logrus.NewEntry(discard)
	}
	return &Builder{cfg: cfg, src: src, log: log}
}

// Build reads every source file and returns the template: units, then weapons, assists
// and specials, then passives grouped by category. Nothing is returned on error.
func (b *Builder) Build() (*Object, error) {
	files, err := b.load()
	if err != nil {
		return nil, err
	}

	blocks := []block{{
		key:     unitSection.key,
		label:   unitSection.file,
		entries: blankEntries(files[UnitsFile], unitSection.fields),
	}}
	for _, s := range defaultSections {
		blocks = append(blocks, block{
			key:     s.key,
			label:   s.file,
			entries: blankEntries(files[s.file], s.fields),
		})
	}
	passives, err := b.passiveBlocks(files[PassivesFile])
	if err != nil {
		return nil, err
	}
	blocks = append(blocks, passives...)

	if b.cfg.Structured {
		return b.nest(blocks), nil
	}
	return b.flatten(blocks)
}

// load reads all source files up front so a missing or broken file fails the build
// before any transformation.
func (b *Builder) load() (map[string]*Object, error) {
	files := make(map[string]*Object, len(SourceFiles()))
	for _, name := range SourceFiles() {
		obj, err := readObject(b.src, name)
		if err != nil {
			return nil, err
		}
		b.log.WithFields(logrus.Fields{"file": name, "entries": obj.Len()}).Info("loaded source file")
		files[name] = obj
	}
	return files, nil
}

// blankEntries maps every key of src to an object of blank fields, sorted.
func blankEntries(src *Object, fields []string) *Object {
	out := NewObject()
	src.Each(func(key string, _ any) {
		entry := NewObject()
		for _, field := range fields {
			entry.Set(field, "")
		}
		out.Set(key, entry)
	})
	return SortKeys(out)
}

// PassiveKey derives the template key of a passive category, e.g. "a" -> "PASSIVE_A".
func PassiveKey(category string) string {
	return PassivePrefix + cases.Upper(language.Und).String(category)
}

func (b *Builder) passiveBlocks(passives *Object) ([]block, error) {
	byKey := make(map[string]block, passives.Len())
	var err error
	passives.Each(func(category string, value any) {
		if err != nil {
			return
		}
		entries, ok := value.(*Object)
		if !ok {
			err = traced(&MalformedInputError{
				Path: b.src.Path(PassivesFile),
				Err:  fmt.Errorf("category %q is not an object", category),
			})
			return
		}
		key := PassiveKey(category)
		if prev, dup := byKey[key]; dup {
			b.log.WithFields(logrus.Fields{"category": category, "key": key, "previous": prev.label}).
				Warn("passive categories share a template key, the later one replaces the earlier")
		}
		byKey[key] = block{key: key, label: key, entries: blankEntries(entries, passiveFields)}
	})
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	blocks := make([]block, 0, len(keys))
	for _, key := range keys {
		blocks = append(blocks, byKey[key])
	}
	return blocks, nil
}

func (b *Builder) nest(blocks []block) *Object {
	out := NewObject()
	for _, blk := range blocks {
		out.Set(blk.key, blk.entries)
	}
	return out
}

// flatten concatenates the entries of every block into one namespace. A key seen in an
// earlier block keeps its position and takes the later value, unless the policy is
// CollisionFail.
func (b *Builder) flatten(blocks []block) (*Object, error) {
	out := NewObject()
	owner := make(map[string]string)
	for _, blk := range blocks {
		var err error
		blk.entries.Each(func(key string, value any) {
			if err != nil {
				return
			}
			if first, seen := owner[key]; seen {
				if b.cfg.Collisions == CollisionFail {
					err = traced(&CollisionError{Key: key, First: first, Second: blk.label})
					return
				}
				b.log.WithFields(logrus.Fields{"entry": key, "first": first, "second": blk.label}).
					Warn("entry key collides across sections, keeping the later one")
			}
			owner[key] = blk.label
			out.Set(key, value)
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
