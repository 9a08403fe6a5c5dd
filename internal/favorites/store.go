// Package favorites owns the persisted favorite set. Membership is keyed by
// movie id (set semantics over an ordered backing slice), and every mutation
// rewrites the whole serialized set into the kv store.
//
// Durability is deliberately weak: a failed write is logged and otherwise
// ignored, and the in-memory set stays authoritative for the rest of the
// session. Construction never fails; an absent or corrupt stored value
// restores as the empty set.
package favorites

import (
	"encoding/json"

	"marquee/internal/kv"
	"marquee/internal/telemetry"
	"marquee/internal/tmdb"
)

// Key is the fixed kv key holding the serialized favorite set.
const Key = "favorites"

// Store holds the favorite set in memory and mirrors it into the kv store.
// It is mutated only from the single-threaded event loop that owns it, so it
// carries no lock.
type Store struct {
	kv      kv.Store
	log     *telemetry.Emitter
	entries []tmdb.MovieSummary
	index   map[int]int // movie id -> position in entries
}

// NewStore restores the favorite set from the kv store. A missing key or a
// value that fails to parse yields an empty set; both conditions are logged,
// neither is an error.
func NewStore(store kv.Store, log *telemetry.Emitter) *Store {
	s := &Store{
		kv:    store,
		log:   log,
		index: make(map[int]int),
	}

	raw, ok, err := store.Get(Key)
	if err != nil {
		log.Emit(telemetry.Event{Kind: telemetry.KindRestoreError, Data: err.Error()})
		return s
	}
	if !ok {
		return s
	}

	var entries []tmdb.MovieSummary
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Emit(telemetry.Event{Kind: telemetry.KindRestoreError, Data: err.Error()})
		return s
	}

	// Rebuild the index, dropping any duplicate ids a hand-edited store
	// might contain. First occurrence wins on restore.
	for _, m := range entries {
		if _, dup := s.index[m.ID]; dup {
			continue
		}
		s.index[m.ID] = len(s.entries)
		s.entries = append(s.entries, m)
	}
	return s
}

// IsFavorite reports whether an entry with the given id is in the set.
func (s *Store) IsFavorite(id int) bool {
	_, ok := s.index[id]
	return ok
}

// Toggle removes the entry with m's id if present, otherwise inserts m.
// Postcondition: IsFavorite(m.ID) is negated. The full set is persisted after
// the in-memory mutation; a write failure does not roll it back.
func (s *Store) Toggle(m tmdb.MovieSummary) {
	if pos, ok := s.index[m.ID]; ok {
		s.entries = append(s.entries[:pos], s.entries[pos+1:]...)
		delete(s.index, m.ID)
		for i := pos; i < len(s.entries); i++ {
			s.index[s.entries[i].ID] = i
		}
		s.log.Emit(telemetry.Event{Kind: telemetry.KindFavoriteRemove, MovieID: m.ID})
	} else {
		s.index[m.ID] = len(s.entries)
		s.entries = append(s.entries, m)
		s.log.Emit(telemetry.Event{Kind: telemetry.KindFavoriteAdd, MovieID: m.ID})
	}
	s.persist()
}

// All returns the favorite set in insertion order. The slice is a copy;
// callers may not mutate the store through it.
func (s *Store) All() []tmdb.MovieSummary {
	out := make([]tmdb.MovieSummary, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	return len(s.entries)
}

// Replace swaps the whole set for the given entries (favorites import).
// Duplicate ids collapse to the last occurrence. The result is persisted.
func (s *Store) Replace(entries []tmdb.MovieSummary) {
	s.entries = nil
	s.index = make(map[int]int)
	for _, m := range entries {
		if pos, dup := s.index[m.ID]; dup {
			s.entries[pos] = m
			continue
		}
		s.index[m.ID] = len(s.entries)
		s.entries = append(s.entries, m)
	}
	s.persist()
}

// persist serializes the full set as a JSON array and overwrites the kv key.
// Write failures are logged only; the in-memory state remains the source of
// truth for the rest of the session.
func (s *Store) persist() {
	entries := s.entries
	if entries == nil {
		entries = []tmdb.MovieSummary{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		s.log.Emit(telemetry.Event{Kind: telemetry.KindPersistError, Data: err.Error()})
		return
	}
	if err := s.kv.Set(Key, string(raw)); err != nil {
		s.log.Emit(telemetry.Event{Kind: telemetry.KindPersistError, Data: err.Error()})
	}
}
