package fehtpl_test

import (
	"testing"

	"github.com/loopcontext/fehtpl"
)

func FuzzDecode(f *testing.F) {
	f.Add([]byte(`{"Alm": {"name": ""}}`))
	f.Add([]byte("\xef\xbb\xbf{\"a\": [1, 2.5, null, true, {\"b\": \"\"}]}"))
	f.Add([]byte(`{"a": "1", "a": "2"}`))
	f.Add([]byte(`[]`))
	f.Add([]byte(`{} x`))

	f.Fuzz(func(t *testing.T, data []byte) {
		o, err := fehtpl.Unmarshal(data)
		if err != nil {
			return
		}
		encoded, err := fehtpl.Marshal(o, fehtpl.DefaultIndent)
		if err != nil {
			t.Fatalf("Marshal() of decoded input failed: %v", err)
		}
		again, err := fehtpl.Unmarshal(encoded)
		if err != nil {
			t.Fatalf("Unmarshal() of encoded output failed: %v\n%s", err, encoded)
		}
		if !again.Equal(o) {
			t.Fatalf("round trip changed the object:\n%s", encoded)
		}
	})
}

func FuzzSortKeys(f *testing.F) {
	f.Add("Zephiel", "Alm", "name", "effect")
	f.Add("", "a", "B", "é")
	f.Add("x", "x", "x", "x")

	f.Fuzz(func(t *testing.T, a, b, c, d string) {
		o := fehtpl.NewObject()
		inner := fehtpl.NewObject()
		inner.Set(c, "")
		inner.Set(d, "")
		o.Set(a, inner)
		o.Set(b, "")

		once := fehtpl.SortKeys(o)
		if !fehtpl.IsSorted(once) {
			t.Fatalf("SortKeys() result is not sorted: %v", once.Keys())
		}
		if !fehtpl.SortKeys(once).Equal(once) {
			t.Fatalf("SortKeys() is not idempotent: %v", once.Keys())
		}
		if once.Len() != o.Len() {
			t.Fatalf("SortKeys() changed the key count: %d != %d", once.Len(), o.Len())
		}
	})
}
