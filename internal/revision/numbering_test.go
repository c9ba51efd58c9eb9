package revision

import (
	"errors"
	"testing"
)

func TestTipDistance(t *testing.T) {
	tests := []struct {
		name         string
		storageIndex int
		length       int
		expected     int
	}{
		{name: "Earliest", storageIndex: 0, length: 4, expected: 3},
		{name: "Most recent", storageIndex: 3, length: 4, expected: 0},
		{name: "Middle", storageIndex: 1, length: 4, expected: 2},
		{name: "Single commit", storageIndex: 0, length: 1, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TipDistance(tt.storageIndex, tt.length)
			if result != tt.expected {
				t.Errorf("TipDistance(%d, %d) = %d, expected %d", tt.storageIndex, tt.length, result, tt.expected)
			}
			if back := StorageIndexFromTip(result, tt.length); back != tt.storageIndex {
				t.Errorf("StorageIndexFromTip(%d, %d) = %d, expected %d", result, tt.length, back, tt.storageIndex)
			}
		})
	}
}

func TestNegativeAlias(t *testing.T) {
	seq := NewSequence([]string{"c0", "c1", "c2", "c3"})

	for i := 0; i < seq.Len(); i++ {
		alias := NegativeAlias(i, seq.Len())
		if alias >= 0 {
			t.Fatalf("NegativeAlias(%d) = %d, expected a negative index", i, alias)
		}
		if got := Resolve(seq, Index(alias)); got.Text != seq.At(i) {
			t.Errorf("Resolve(Index(%d)) = %q, expected %q", alias, got.Text, seq.At(i))
		}
	}
}

func TestDisplayOrder(t *testing.T) {
	seq := NewSequence([]string{"c0", "c1", "c2", "c3"})

	entries := DisplayOrder(seq)

	expected := []Entry{
		{ID: "c3", Number: 3, TipDistance: 0},
		{ID: "c2", Number: 2, TipDistance: 1},
		{ID: "c1", Number: 1, TipDistance: 2},
		{ID: "c0", Number: 0, TipDistance: 3},
	}
	if len(entries) != len(expected) {
		t.Fatalf("got %d entries, expected %d", len(entries), len(expected))
	}
	for i := range expected {
		if entries[i] != expected[i] {
			t.Errorf("entries[%d] = %+v, expected %+v", i, entries[i], expected[i])
		}
	}
}

func TestDisplayOrder_Empty(t *testing.T) {
	if entries := DisplayOrder(NewSequence(nil)); len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestNumber(t *testing.T) {
	seq := NewSequence([]string{"a1b2c3", "a1ffff", "d4e5f6", "0099aa"})

	tests := []struct {
		name     string
		id       string
		expected int
		err      error
	}{
		{name: "Full id", id: "d4e5f6", expected: 2},
		{name: "Unique prefix", id: "d4", expected: 2},
		{name: "Uppercase", id: "D4E5", expected: 2},
		{name: "Surrounding space", id: " 0099 ", expected: 3},
		{name: "Ambiguous prefix", id: "a1", err: ErrAmbiguousPrefix},
		{name: "Unknown", id: "ffff", err: ErrUnknownCommit},
		{name: "Empty", id: "", err: ErrUnknownCommit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Number(seq, tt.id)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Number(%q) error = %v, expected %v", tt.id, err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Number(%q) = %d, expected %d", tt.id, result, tt.expected)
			}
		})
	}
}

func TestNumber_ExactMatchBeatsLongerPrefix(t *testing.T) {
	seq := NewSequence([]string{"abcd", "abce", "abc"})

	result, err := Number(seq, "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != 2 {
		t.Errorf("Number(abc) = %d, expected 2", result)
	}
}
