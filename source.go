package fehtpl

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

//go:generate mockgen -source=$GOFILE -package mock_fehtpl -destination=test/mock/$GOFILE

// Source reads the raw bytes of a named data file.
type Source interface {
	// ReadFile returns the content of name. A missing file is reported with an
	// error satisfying errors.Is(err, fs.ErrNotExist).
	ReadFile(name string) ([]byte, error)
	// Path describes where name lives, for error messages.
	Path(name string) string
}

// DirSource reads data files from a directory.
type DirSource string

func (d DirSource) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(d.Path(name))
}

func (d DirSource) Path(name string) string {
	return filepath.Join(string(d), name)
}

// readObject reads and decodes name from src.
func readObject(src Source, name string) (*Object, error) {
	data, err := src.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, traced(&MissingFileError{Path: src.Path(name), Err: err})
		}
		return nil, traced(err)
	}
	obj, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, traced(&MalformedInputError{Path: src.Path(name), Err: err})
	}
	return obj, nil
}

// LoadFile reads a JSON object from path, such as a translated file to update.
func LoadFile(path string) (*Object, error) {
	return readObject(DirSource(filepath.Dir(path)), filepath.Base(path))
}
