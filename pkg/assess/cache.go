package assess

import (
	"github.com/cespare/xxhash/v2"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
)

type boundFlag uint8

const (
	boundExact boundFlag = iota
	boundLower
	boundUpper
)

type searchResult struct {
	Score int
	Moves []Move
}

type cacheEntry struct {
	searchResult
	flag boundFlag
}

// transpositionTable memoizes search nodes of a single NextMove call.
type transpositionTable struct {
	entries map[uint64]cacheEntry
	buf     []byte
	hits    int
}

func newTranspositionTable() *transpositionTable {
	return &transpositionTable{entries: make(map[uint64]cacheEntry)}
}

// key hashes every wall clicked bit, every cell owner, the remaining depth, the
// maximizing flag and the player to move.
func (t *transpositionTable) key(b *chess.Board, depth int, maximizing bool, mover chess.Player) uint64 {
	t.buf = b.AppendKey(t.buf[:0])
	t.buf = append(t.buf,
		byte(depth), byte(depth>>8), byte(depth>>16), byte(depth>>24),
		boolByte(maximizing),
		byte(mover),
	)
	return xxhash.Sum64(t.buf)
}

// probe returns a stored result that settles the node for the window
// (alpha, beta).
func (t *transpositionTable) probe(key uint64, alpha, beta int) (searchResult, bool) {
	e, ok := t.entries[key]
	if !ok {
		return searchResult{}, false
	}

	switch e.flag {
	case boundExact:
	case boundLower:
		if e.Score <= beta {
			return searchResult{}, false
		}
	case boundUpper:
		if e.Score >= alpha {
			return searchResult{}, false
		}
	}

	t.hits++
	return e.searchResult, true
}

func (t *transpositionTable) store(key uint64, r searchResult, alpha, beta int) {
	flag := boundExact
	switch {
	case r.Score < alpha:
		flag = boundUpper
	case r.Score > beta:
		flag = boundLower
	}
	t.entries[key] = cacheEntry{searchResult: r, flag: flag}
}

func (t *transpositionTable) len() int {
	return len(t.entries)
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
