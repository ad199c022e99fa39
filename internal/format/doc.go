// Package format renders a parsed environment file as normalized text:
// entries sorted by key, comment blocks kept above their entry, and a blank
// line between groups of keys that share a prefix.
package format
