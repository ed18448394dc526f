package pamargs

import (
	"sort"

	"github.com/tekwizely/pam-args/internal/util"
)

// KeyValueStore collects key-value pairs discovered during a scan.
//
type KeyValueStore interface {
	Add(key string, value Optional[string])
	Get(key string) (Optional[string], bool)
	HasKey(key string) bool
	Keys() []string
	Len() int
	IsEmpty() bool
}

// MapKeyValueStore is the map-backed KeyValueStore. Not safe for
// concurrent use.
//
type MapKeyValueStore struct {
	caseSensitive bool
	values        map[string]Optional[string]
}

// NewMapKeyValueStore creates an empty case-sensitive store.
//
func NewMapKeyValueStore() *MapKeyValueStore {
	return &MapKeyValueStore{
		caseSensitive: true,
		values:        make(map[string]Optional[string]),
	}
}

// SetCaseSensitive switches key normalization. Call before adding entries;
// existing keys are not renormalized.
//
func (s *MapKeyValueStore) SetCaseSensitive(v bool) {
	s.caseSensitive = v
}

// NormalizeKey applies the store's case policy to a key.
//
func (s *MapKeyValueStore) NormalizeKey(key string) string {
	return util.Normalize(key, s.caseSensitive)
}

// Add stores a value under key. A later Add for the same key replaces the
// earlier value.
//
func (s *MapKeyValueStore) Add(key string, value Optional[string]) {
	s.values[s.NormalizeKey(key)] = value
}

// Get returns the value stored under key.
//
func (s *MapKeyValueStore) Get(key string) (Optional[string], bool) {
	v, ok := s.values[s.NormalizeKey(key)]
	return v, ok
}

// HasKey reports whether key is present.
//
func (s *MapKeyValueStore) HasKey(key string) bool {
	_, ok := s.values[s.NormalizeKey(key)]
	return ok
}

// Keys returns the stored keys in sorted order.
//
func (s *MapKeyValueStore) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len
//
func (s *MapKeyValueStore) Len() int { return len(s.values) }

// IsEmpty
//
func (s *MapKeyValueStore) IsEmpty() bool { return len(s.values) == 0 }

// Clear removes all entries.
//
func (s *MapKeyValueStore) Clear() {
	s.values = make(map[string]Optional[string])
}

// ValueOf fetches a key from a store and runs it through a typed converter.
// The second return is false when the key is absent, the value itself is
// absent, or conversion fails.
//
func ValueOf[T any](store KeyValueStore, key string, fn ConvertFunc[T]) (T, bool) {
	var zero T
	opt, ok := store.Get(key)
	if !ok || !opt.Present {
		return zero, false
	}
	v, err := Convert(opt.Value, nil, fn)
	if err != nil {
		return zero, false
	}
	return v, true
}

// NonArgTextStore collects tokens that matched no declared argument, in
// the order they were seen.
//
type NonArgTextStore struct {
	texts []string
}

// NewNonArgTextStore
//
func NewNonArgTextStore() *NonArgTextStore {
	return &NonArgTextStore{}
}

// Add appends one text entry.
//
func (s *NonArgTextStore) Add(text string) {
	s.texts = append(s.texts, text)
}

// AddAll appends several text entries.
//
func (s *NonArgTextStore) AddAll(texts []string) {
	s.texts = append(s.texts, texts...)
}

// Texts returns the collected entries in insertion order.
//
func (s *NonArgTextStore) Texts() []string {
	return s.texts
}

// Len
//
func (s *NonArgTextStore) Len() int { return len(s.texts) }

// IsEmpty
//
func (s *NonArgTextStore) IsEmpty() bool { return len(s.texts) == 0 }

// Clear removes all entries.
//
func (s *NonArgTextStore) Clear() {
	s.texts = nil
}
