package search

import "github.com/kestrelchess/kestrel/internal/engine"

// Bound records what kind of value a transposition table entry holds,
// relative to the alpha-beta window it was stored under.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower       // score is a fail-high; true value >= Score
	BoundUpper       // score is a fail-low; true value <= Score
)

// Entry is one transposition table slot.
type Entry struct {
	Hash  uint64
	Depth int
	Score Score
	Bound Bound
	Move  engine.Move
	valid bool
}

// Table is a fixed-size, always-replace transposition table indexed by the
// low bits of the Zobrist hash. Collisions are resolved by overwrite: the
// newest search of a position is assumed more valuable than a stale one.
type Table struct {
	entries []Entry
	mask    uint64
}

// NewTable allocates a table sized to approximately sizeMB megabytes,
// rounded down to the nearest power of two number of entries.
func NewTable(sizeMB int) *Table {
	if sizeMB < 1 {
		sizeMB = 1
	}
	const entrySize = 40 // approximate size of Entry in bytes
	want := (sizeMB * 1024 * 1024) / entrySize
	n := 1
	for n*2 <= want {
		n *= 2
	}
	if n < 1024 {
		n = 1024
	}
	return &Table{entries: make([]Entry, n), mask: uint64(n - 1)}
}

// Probe returns the entry stored for hash, if any.
func (t *Table) Probe(hash uint64) (Entry, bool) {
	e := t.entries[hash&t.mask]
	if !e.valid || e.Hash != hash {
		return Entry{}, false
	}
	return e, true
}

// Store records a search result for hash, unconditionally replacing
// whatever occupied the slot.
func (t *Table) Store(hash uint64, depth int, score Score, bound Bound, move engine.Move) {
	t.entries[hash&t.mask] = Entry{Hash: hash, Depth: depth, Score: score, Bound: bound, Move: move, valid: true}
}

// Clear empties every slot, e.g. between games.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}
