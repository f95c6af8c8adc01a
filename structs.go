package fehtpl

import (
	"github.com/sirupsen/logrus"
)

// Source data files, in the order their sections appear in a template.
const (
	UnitsFile    = "units.json"
	WeaponsFile  = "weapons.json"
	AssistsFile  = "assists.json"
	SpecialsFile = "specials.json"
	PassivesFile = "passives.json"
)

// Translatable fields.
const (
	FieldName   = "name"
	FieldEffect = "effect"
)

// PassivePrefix starts the template key of every passive category.
const PassivePrefix = "PASSIVE_"

// CollisionPolicy decides what happens when two sections of a flat template emit the
// same entry key.
type CollisionPolicy string

const (
	// CollisionWarn logs the collision; the later section's entry wins.
	CollisionWarn CollisionPolicy = "warn"
	// CollisionFail aborts the build with a CollisionError.
	CollisionFail CollisionPolicy = "fail"
)

// Config configures a Builder.
type Config struct {
	// DataDir holds the five source files. Ignored when Source is set.
	DataDir string
	// Source overrides where source files are read from.
	Source Source
	// Structured nests each section under its own top-level key instead of
	// flattening all entries into one namespace.
	Structured bool
	// Collisions defaults to CollisionWarn.
	Collisions CollisionPolicy
	// Log receives warnings and progress. Nil discards.
	Log *logrus.Entry
}

// section describes one block of a template.
type section struct {
	file string
	// key is the block's top-level key in the structured layout.
	key    string
	fields []string
}

var (
	unitSection = section{file: UnitsFile, key: "HEROES", fields: []string{FieldName}}

	defaultSections = []section{
		{file: WeaponsFile, key: "WEAPONS", fields: []string{FieldEffect, FieldName}},
		{file: AssistsFile, key: "ASSISTS", fields: []string{FieldEffect, FieldName}},
		{file: SpecialsFile, key: "SPECIALS", fields: []string{FieldEffect, FieldName}},
	}

	passiveFields = []string{FieldEffect, FieldName}
)

// SourceFiles lists every file a build reads.
func SourceFiles() []string {
	return []string{UnitsFile, WeaponsFile, AssistsFile, SpecialsFile, PassivesFile}
}
