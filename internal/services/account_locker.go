package services

import (
	"bytes"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// AccountLocker serializes mutations per account. Locks for several accounts
// are always taken in ascending id order so two transfers between the same
// pair in opposite directions cannot deadlock. Entries are dropped once no
// caller holds or waits on them.
type AccountLocker struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*lockEntry
}

func NewAccountLocker() *AccountLocker {
	return &AccountLocker{
		entries: make(map[uuid.UUID]*lockEntry),
	}
}

// Lock blocks until every listed account is held and returns the function
// that releases them. Duplicate ids are locked once.
func (l *AccountLocker) Lock(ids ...uuid.UUID) (unlock func()) {
	ordered := orderedIDs(ids)

	held := make([]*lockEntry, 0, len(ordered))
	for _, id := range ordered {
		entry := l.acquire(id)
		entry.mu.Lock()
		held = append(held, entry)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(held) - 1; i >= 0; i-- {
				held[i].mu.Unlock()
				l.release(ordered[i])
			}
		})
	}
}

// Held returns the number of accounts with a live lock entry.
func (l *AccountLocker) Held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *AccountLocker) acquire(id uuid.UUID) *lockEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[id]
	if !ok {
		entry = &lockEntry{}
		l.entries[id] = entry
	}
	entry.refs++
	return entry
}

func (l *AccountLocker) release(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[id]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, id)
	}
}

func orderedIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i][:], out[j][:]) < 0
	})
	return out
}
