package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Indent is the per-level indentation of written templates. In a config file it is
// either a number of spaces (indent: 4) or the literal indent (indent: "\t").
// A string made only of digits counts spaces too.
type Indent string

// ParseIndent converts a decoded YAML or TOML scalar into an Indent.
func ParseIndent(v interface{}) (Indent, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return indentCount(n)
		}
		return Indent(t), nil
	case int:
		return indentCount(int64(t))
	case int64:
		return indentCount(t)
	case uint64:
		return indentCount(int64(t))
	case float64:
		if t != float64(int64(t)) {
			return "", fmt.Errorf("indent must be a whole number, got %v", t)
		}
		return indentCount(int64(t))
	default:
		return "", fmt.Errorf("indent must be string or int, got %T", v)
	}
}

func indentCount(n int64) (Indent, error) {
	if n <= 0 {
		return "", fmt.Errorf("indent must be > 0, got %d", n)
	}
	return Indent(strconv.FormatInt(n, 10)), nil
}

// UnmarshalYAML allows indent to be given as int or string in YAML.
func (i *Indent) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	parsed, err := ParseIndent(v)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// MarshalYAML emits int when the value is a count, otherwise the literal string.
func (i Indent) MarshalYAML() (interface{}, error) {
	s := string(i)
	if s == "" {
		return nil, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	return s, nil
}

// String returns the indentation to write per level. Empty means the caller's default.
func (i Indent) String() string {
	s := string(i)
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return strings.Repeat(" ", n)
	}
	return s
}
