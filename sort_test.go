package fehtpl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/loopcontext/fehtpl"
	"github.com/stretchr/testify/assert"
)

func TestSortKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: `{}`, want: `{}`},
		{name: "flat", in: `{"Zephiel": "", "Alm": ""}`, want: `{"Alm": "", "Zephiel": ""}`},
		{
			name: "nested",
			in:   `{"b": {"name": "", "effect": ""}, "a": {"z": {"y": "", "x": ""}}}`,
			want: `{"a": {"z": {"x": "", "y": ""}}, "b": {"effect": "", "name": ""}}`,
		},
		{name: "byte order", in: `{"a": "", "B": "", "É": "", "Z": ""}`, want: `{"B": "", "Z": "", "a": "", "É": ""}`},
		{name: "arrays untouched", in: `{"l": [{"b": 1, "a": 2}]}`, want: `{"l": [{"b": 1, "a": 2}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := mustUnmarshal(t, tt.in)
			before := in.Clone()

			got := fehtpl.SortKeys(in)
			if diff := cmp.Diff(mustUnmarshal(t, tt.want), got, objectEqual); diff != "" {
				t.Errorf("SortKeys() mismatch (-want +got):\n%s", diff)
			}
			assert.True(t, before.Equal(in), "input was modified")
			assert.True(t, fehtpl.IsSorted(got))
		})
	}
}

func TestSortKeysIdempotent(t *testing.T) {
	in := mustUnmarshal(t, `{"c": {"z": "", "a": {"q": "", "b": ""}}, "a": "", "b": {}}`)
	once := fehtpl.SortKeys(in)
	twice := fehtpl.SortKeys(once)
	if diff := cmp.Diff(once, twice, objectEqual); diff != "" {
		t.Errorf("sorting twice differs (-once +twice):\n%s", diff)
	}
}

func TestIsSorted(t *testing.T) {
	assert.True(t, fehtpl.IsSorted(mustUnmarshal(t, `{"a": {"b": "", "c": ""}, "b": ""}`)))
	assert.False(t, fehtpl.IsSorted(mustUnmarshal(t, `{"b": "", "a": ""}`)))
	assert.False(t, fehtpl.IsSorted(mustUnmarshal(t, `{"a": {"c": "", "b": ""}}`)))
}
