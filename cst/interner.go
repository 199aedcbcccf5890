package cst

import (
	"bytes"
	"sync"

	"golang.org/x/crypto/sha3"
)

// TokenID identifies one distinct piece of interned token text. IDs are
// dense, assigned in first-seen order.
type TokenID uint32

// Interner is a hash-consed string table: a simple map from text to id
// behind a mutex at build time, with dense integer ids (spec.md §9). Keys
// are content hashes rather than the raw string so that repeated large
// stringlike payloads (island headers, long paths) hash once and compare by
// digest on the hot path, the same way the reference planner derives
// content-addressed keys for its build artifacts via SHA3.
//
// Construction must be synchronized if shared across goroutines; once
// building is finished, Text is a lock-free slice read (spec.md §5).
type Interner struct {
	mu      sync.Mutex
	buckets map[[32]byte][]internedEntry
	texts   [][]byte
}

type internedEntry struct {
	text []byte
	id   TokenID
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{buckets: make(map[[32]byte][]internedEntry)}
}

// Intern returns the id for text, assigning a new one on first sight. The
// returned id is stable for the Interner's lifetime. text is copied; the
// caller's slice may be reused or mutated afterward.
func (in *Interner) Intern(text []byte) TokenID {
	h := sha3.Sum256(text)

	in.mu.Lock()
	defer in.mu.Unlock()

	for _, e := range in.buckets[h] {
		if bytes.Equal(e.text, text) {
			return e.id
		}
	}

	owned := append([]byte(nil), text...)
	id := TokenID(len(in.texts))
	in.texts = append(in.texts, owned)
	in.buckets[h] = append(in.buckets[h], internedEntry{text: owned, id: id})
	return id
}

// Text returns the bytes previously interned under id. Callers must not
// modify the returned slice.
func (in *Interner) Text(id TokenID) []byte {
	return in.texts[id]
}
