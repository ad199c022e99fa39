package format

import (
	"envtidy/internal/envfile"
	"strings"
)

// Group is a run of sorted entries sharing the same key prefix.
type Group struct {
	Prefix  string
	Entries []envfile.Entry
}

// Groups splits the sorted entries of f wherever the key prefix changes.
//
// Example (sorted keys -> groups):
//
//	APP_NAME, DB_HOST, DB_PORT, PORT -> [APP_NAME] [DB_HOST DB_PORT] [PORT]
func Groups(f *envfile.File) []Group {
	var groups []Group
	for _, entry := range f.SortedEntries() {
		prefix := entry.Prefix()
		if n := len(groups); n > 0 && groups[n-1].Prefix == prefix {
			groups[n-1].Entries = append(groups[n-1].Entries, entry)
			continue
		}
		groups = append(groups, Group{Prefix: prefix, Entries: []envfile.Entry{entry}})
	}
	return groups
}

// Lines returns the formatted file line by line, with an empty string
// separating prefix groups.
func Lines(f *envfile.File) []string {
	var result []string
	for i, group := range Groups(f) {
		if i > 0 {
			result = append(result, "")
		}
		for _, entry := range group.Entries {
			result = append(result, entry.Comments...)
			result = append(result, entry.Line())
		}
	}
	return result
}

// File returns the formatted file as a single string. No trailing newline
// is added.
func File(f *envfile.File) string {
	return strings.Join(Lines(f), "\n")
}
