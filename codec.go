package fehtpl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spkg/bom"
)

// DefaultIndent is the per-level indentation of written templates.
const DefaultIndent = "    "

var (
	errNotObject    = errors.New("top level value is not a JSON object")
	errTrailingData = errors.New("unexpected data after top level object")
)

// Decode reads one JSON object from r keeping the order of keys at every level.
// A leading UTF-8 byte order mark is ignored. Numbers are kept as json.Number so
// they are written back exactly as read. A repeated key keeps its first position and
// its last value.
func Decode(r io.Reader) (*Object, error) {
	dec := json.NewDecoder(bom.NewReader(r))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}
	obj, err := decodeObject(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, errTrailingData
		}
		return nil, err
	}
	return obj, nil
}

// Unmarshal is Decode over a byte slice.
func Unmarshal(data []byte) (*Object, error) {
	return Decode(bytes.NewReader(data))
}

// decodeObject reads the members of an object whose opening brace was consumed.
func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		obj.Set(key, value)
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", delim)
		}
	}
	return tok, nil
}

// Encode writes o as indented JSON followed by a newline. Keys are written in
// insertion order; non-ASCII and HTML characters are written as they are.
func Encode(w io.Writer, o *Object, indent string) error {
	data, err := Marshal(o, indent)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Marshal returns the encoding written by Encode.
func Marshal(o *Object, indent string) ([]byte, error) {
	e := &encoder{indent: indent}
	if err := e.writeObject(o, 0); err != nil {
		return nil, err
	}
	e.buf.WriteByte('\n')
	return e.buf.Bytes(), nil
}

type encoder struct {
	buf    bytes.Buffer
	indent string
}

func (e *encoder) newline(depth int) {
	e.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.buf.WriteString(e.indent)
	}
}

func (e *encoder) writeObject(o *Object, depth int) error {
	if o.Len() == 0 {
		e.buf.WriteString("{}")
		return nil
	}
	e.buf.WriteByte('{')
	first := true
	var err error
	o.Each(func(key string, value any) {
		if err != nil {
			return
		}
		if !first {
			e.buf.WriteByte(',')
		}
		first = false
		e.newline(depth + 1)
		if err = e.writeScalar(key); err != nil {
			return
		}
		e.buf.WriteString(": ")
		err = e.writeValue(value, depth+1)
	})
	if err != nil {
		return err
	}
	e.newline(depth)
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) writeArray(arr []any, depth int) error {
	if len(arr) == 0 {
		e.buf.WriteString("[]")
		return nil
	}
	e.buf.WriteByte('[')
	for i, value := range arr {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.newline(depth + 1)
		if err := e.writeValue(value, depth+1); err != nil {
			return err
		}
	}
	e.newline(depth)
	e.buf.WriteByte(']')
	return nil
}

func (e *encoder) writeValue(value any, depth int) error {
	switch t := value.(type) {
	case *Object:
		return e.writeObject(t, depth)
	case []any:
		return e.writeArray(t, depth)
	default:
		return e.writeScalar(t)
	}
}

func (e *encoder) writeScalar(value any) error {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return err
	}
	e.buf.Write(bytes.TrimSuffix(b.Bytes(), []byte{'\n'}))
	return nil
}
