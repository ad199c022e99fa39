// Package compare computes the key-level differences between two parsed
// environment files.
package compare

import (
	"envtidy/internal/envfile"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Difference is a key present in both files with different values.
type Difference struct {
	Key    string
	First  string
	Second string
}

// Edits returns a character-level diff turning First into Second,
// cleaned up for human reading.
func (d Difference) Edits() []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(d.First, d.Second, false)
	return dmp.DiffCleanupSemantic(diffs)
}

// Result is the three-way outcome of comparing two files.
// All slices are sorted by key.
type Result struct {
	OnlyInFirst  []string
	OnlyInSecond []string
	Differing    []Difference
}

// Identical reports whether the files hold the same keys with the same values.
func (r Result) Identical() bool {
	return len(r.OnlyInFirst) == 0 && len(r.OnlyInSecond) == 0 && len(r.Differing) == 0
}

// Files compares first against second. Values are compared as exact,
// case-sensitive strings; keys whose values match are left out.
func Files(first, second *envfile.File) Result {
	var r Result

	for _, key := range first.SortedKeys() {
		if !second.Has(key) {
			r.OnlyInFirst = append(r.OnlyInFirst, key)
			continue
		}
		a, b := first.Value(key), second.Value(key)
		if a != b {
			r.Differing = append(r.Differing, Difference{Key: key, First: a, Second: b})
		}
	}

	for _, key := range second.SortedKeys() {
		if !first.Has(key) {
			r.OnlyInSecond = append(r.OnlyInSecond, key)
		}
	}

	return r
}
