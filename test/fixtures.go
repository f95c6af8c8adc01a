package test

import (
	"os"
	"path/filepath"
)

// SampleData is a small but complete data directory: two units, one entry per default
// file, and passives in three categories given out of order.
var SampleData = map[string]string{
	"units.json": `{
    "Zephiel": {"color": "Red", "wpnType": "Sword"},
    "Alm": {"color": "Red", "wpnType": "Sword"},
    "Celica": {"color": "Red", "wpnType": "Tome"}
}`,
	"weapons.json": `{
    "Silver Sword": {"might": 15},
    "Falchion": {"might": 16, "effect": "Effective against dragons."}
}`,
	"assists.json": `{
    "Reposition": {"range": 1},
    "Ardent Sacrifice": {"range": 1}
}`,
	"specials.json": `{
    "Moonbow": {"cooldown": 2},
    "Aether": {"cooldown": 5}
}`,
	"passives.json": `{
    "C": {"Hone Atk 3": {"sp": 200}},
    "B": {"Vantage 3": {"sp": 240}, "Desperation 3": {"sp": 240}},
    "A": {"Fury 3": {"sp": 240}, "Death Blow 3": {"sp": 240}}
}`,
}

// SampleKeys is the flat template key order built from SampleData.
var SampleKeys = []string{
	"Alm", "Celica", "Zephiel",
	"Falchion", "Silver Sword",
	"Ardent Sacrifice", "Reposition",
	"Aether", "Moonbow",
	"Death Blow 3", "Fury 3",
	"Desperation 3", "Vantage 3",
	"Hone Atk 3",
}

// WriteDataDir writes files into dir, creating it when needed.
func WriteDataDir(dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// With returns a copy of base with the given files replaced. A "" content removes the
// file from the copy.
func With(base map[string]string, files map[string]string) map[string]string {
	out := make(map[string]string, len(base))
	for name, content := range base {
		out[name] = content
	}
	for name, content := range files {
		if content == "" {
			delete(out, name)
			continue
		}
		out[name] = content
	}
	return out
}
