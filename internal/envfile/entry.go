package envfile

import (
	"envtidy/internal/constants"
	"slices"
	"sort"
	"strings"
)

// Entry is one parsed KEY=value line together with the comment block
// directly above it.
type Entry struct {
	Key      string
	Value    string
	Comments []string
}

// Prefix returns the grouping token of the key: the text before the first
// underscore, or the whole key when it has none.
//
// Examples:
//
//	DB_HOST       -> DB
//	APP_LOG_LEVEL -> APP
//	PORT          -> PORT
//	_HIDDEN       -> ""
func (e Entry) Prefix() string {
	if idx := strings.Index(e.Key, constants.PrefixSep); idx >= 0 {
		return e.Key[:idx]
	}
	return e.Key
}

// Line renders the entry as it appears in a formatted file.
func (e Entry) Line() string {
	return e.Key + constants.KeyValueSep + e.Value
}

func (e Entry) clone() Entry {
	e.Comments = slices.Clone(e.Comments)
	return e
}

// File holds the entries of one parsed environment file.
// It is populated once by Read or Parse and never modified afterwards.
type File struct {
	Path    string
	entries map[string]Entry
	order   []string
}

func newFile(path string) *File {
	return &File{
		Path:    path,
		entries: make(map[string]Entry),
	}
}

// set stores the entry, keeping the position of the first occurrence of its key.
func (f *File) set(e Entry) {
	if _, exists := f.entries[e.Key]; !exists {
		f.order = append(f.order, e.Key)
	}
	f.entries[e.Key] = e
}

// Get returns the entry stored under key.
func (f *File) Get(key string) (Entry, bool) {
	e, ok := f.entries[key]
	return e.clone(), ok
}

// Has reports whether key is present.
func (f *File) Has(key string) bool {
	_, ok := f.entries[key]
	return ok
}

// Value returns the value stored under key, or an empty string.
func (f *File) Value(key string) string {
	return f.entries[key].Value
}

// Len returns the number of distinct keys.
func (f *File) Len() int {
	return len(f.order)
}

// Keys returns the keys in the order they first appeared in the file.
func (f *File) Keys() []string {
	keys := make([]string, len(f.order))
	copy(keys, f.order)
	return keys
}

// SortedKeys returns the keys in ascending byte order.
func (f *File) SortedKeys() []string {
	keys := f.Keys()
	sort.Strings(keys)
	return keys
}

// SortedEntries returns all entries ordered by key.
func (f *File) SortedEntries() []Entry {
	keys := f.SortedKeys()
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, f.entries[key].clone())
	}
	return entries
}
