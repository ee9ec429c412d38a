package shared

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/peterldowns/testy/assert"
)

func TestStoreColumn(t *testing.T) {
	store := Store{"o": Column{1, 2}}
	assert.Equal(t, 2, len(store.Column("o")))
	assert.Equal(t, 0, len(store.Column("missing")))
	assert.Equal(t, 0, len(store.Column("")))

	var empty Store
	assert.Equal(t, 0, len(empty.Column("o")))
}

func TestStoreClone(t *testing.T) {
	store := Store{
		"o":     Column{1, 2, 3},
		"s":     Column{"ABC", "ABC", "ABC"},
		"empty": nil,
	}

	clone := store.Clone()
	if diff := cmp.Diff(store, clone); diff != "" {
		t.Errorf("clone differs (-want +got):\n%s", diff)
	}

	// Ensure columns are not shared.
	clone["o"][0] = 99
	assert.Equal(t, Value(1), store["o"][0])

	var nilStore Store
	assert.True(t, nilStore.Clone() == nil)
}

func TestNewPoint(t *testing.T) {
	p := NewPoint(100, 10, 12, 9, 11)
	assert.Equal(t, Point{100, 10, 12, 9, 11}, p)
}
