package fehtpl

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveOptions controls how Save writes a template.
type SaveOptions struct {
	// Indent is written once per nesting level. Empty means DefaultIndent.
	Indent string
	// Atomic writes to a temporary file next to path and renames it into place, so a
	// failed write never leaves a half written template behind.
	Atomic bool
}

// Save encodes o and writes it to path in one write, creating the parent directory.
func Save(path string, o *Object, opts SaveOptions) error {
	if err := save(path, o, opts); err != nil {
		return traced(err)
	}
	return nil
}

func save(path string, o *Object, opts SaveOptions) error {
	indent := opts.Indent
	if indent == "" {
		indent = DefaultIndent
	}
	data, err := Marshal(o, indent)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if !opts.Atomic {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}
	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
