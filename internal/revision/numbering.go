package revision

import (
	"errors"
	"fmt"
	"strings"
)

// Two numberings exist and must not be confused:
//
//   - storage index: position in a Sequence, earliest commit = 0. This is the
//     revision number users type and the number printed beside each log entry.
//   - tip distance: position in the log as displayed newest first, most
//     recent commit = 0.
//
// For a history of length L they are related by tip = L-1-storage.

// TipDistance converts a storage index into its position counted from the
// most recent commit.
func TipDistance(storageIndex, length int) int {
	return length - 1 - storageIndex
}

// StorageIndexFromTip converts a position counted from the most recent commit
// back into a storage index.
func StorageIndexFromTip(tipDistance, length int) int {
	return length - 1 - tipDistance
}

// NegativeAlias returns the tail-relative index that addresses the same
// commit as storageIndex. The most recent commit is -1.
func NegativeAlias(storageIndex, length int) int {
	return storageIndex - length
}

// Entry pairs a commit identifier with both of its numbers.
type Entry struct {
	ID          string
	Number      int
	TipDistance int
}

// DisplayOrder lists the sequence newest first, as a log is shown.
// Entry.Number is the storage index, so Resolve(seq, Index(e.Number)) == e.ID.
func DisplayOrder(seq Sequence) []Entry {
	n := seq.Len()
	entries := make([]Entry, n)
	for d := 0; d < n; d++ {
		i := StorageIndexFromTip(d, n)
		entries[d] = Entry{ID: seq.At(i), Number: i, TipDistance: d}
	}
	return entries
}

var (
	// ErrUnknownCommit is returned when no commit matches an identifier.
	ErrUnknownCommit = errors.New("unknown commit")
	// ErrAmbiguousPrefix is returned when an abbreviated identifier matches
	// more than one commit.
	ErrAmbiguousPrefix = errors.New("ambiguous commit prefix")
)

// Number finds the storage index of a full or abbreviated commit identifier.
func Number(seq Sequence, id string) (int, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return 0, fmt.Errorf("%w: empty identifier", ErrUnknownCommit)
	}

	found, matches := -1, 0
	for i, candidate := range seq.ids {
		if candidate == id {
			return i, nil
		}
		if strings.HasPrefix(candidate, id) {
			found = i
			matches++
		}
	}
	switch {
	case matches == 0:
		return 0, fmt.Errorf("%w: %s", ErrUnknownCommit, id)
	case matches > 1:
		return 0, fmt.Errorf("%w: %s", ErrAmbiguousPrefix, id)
	}
	return found, nil
}
