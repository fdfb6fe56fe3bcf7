package negamax

import "fmt"

type ttEntry struct {
	key   uint16
	value uint8
	depth uint8
}

type TableStats struct {
	Lookups    int
	Hits       int
	Collisions int // slot held a different key
	Stores     int
}

func (s TableStats) HitRate() float64 {
	if s.Lookups == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Lookups)
}

func (s TableStats) String() string {
	return fmt.Sprintf("TableStats={lookups=%d, hits=%d (%.1f%%), collisions=%d, stores=%d}",
		s.Lookups, s.Hits, 100*s.HitRate(), s.Collisions, s.Stores)
}

// Direct-mapped transposition table: a key lives in slot key % size,
// every store overwrites the slot. Lookups compare the stored key,
// so an overwritten entry is never returned for another key.
//
// A zeroed entry is empty, stored values must be strictly positive.
// Not safe for concurrent use.
type TranspositionTable struct {
	entries []ttEntry
	stats   TableStats
}

// Create a table with given number of slots, size <= 0 means DefaultTableSize
func NewTranspositionTable(size int) *TranspositionTable {
	if size <= 0 {
		size = DefaultTableSize
	}
	return &TranspositionTable{entries: make([]ttEntry, size)}
}

func (tt *TranspositionTable) index(key uint16) int {
	return int(key) % len(tt.entries)
}

// Get the (value, depth) stored for the key, ok is false if absent
func (tt *TranspositionTable) Lookup(key uint16) (value, depth uint8, ok bool) {
	tt.stats.Lookups++
	entry := &tt.entries[tt.index(key)]

	if entry.value == 0 {
		return 0, 0, false
	}
	if entry.key != key {
		tt.stats.Collisions++
		return 0, 0, false
	}

	tt.stats.Hits++
	return entry.value, entry.depth, true
}

// Overwrite the key's slot, value must be non-zero to be retrievable
func (tt *TranspositionTable) Store(key uint16, value, depth uint8) {
	tt.stats.Stores++
	tt.entries[tt.index(key)] = ttEntry{key: key, value: value, depth: depth}
}

// Empty every slot and reset the counters
func (tt *TranspositionTable) Clear() {
	clear(tt.entries)
	tt.stats = TableStats{}
}

func (tt *TranspositionTable) Size() int {
	return len(tt.entries)
}

func (tt *TranspositionTable) Stats() TableStats {
	return tt.stats
}
