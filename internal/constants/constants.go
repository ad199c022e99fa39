package constants

// File Names
const (
	AppConfigFileName = "envtidy.toml"
	AppLogFileName    = "envtidy.log"
)

// Config defaults
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	StyleText  = "text"
	StyleTable = "table"
	StyleYAML  = "yaml"

	DefaultLogLevel = "warn"
)

// Compare report section headers
const (
	UniqueHeaderFormat    = "=== Keys unique to %s ==="
	DifferentValuesHeader = "=== Keys with different values ==="
)

// Markers used by the formatter and parser
const (
	CommentPrefix = "#"
	KeyValueSep   = "="
	PrefixSep     = "_"
	MissingValue = "(missing)"
	ErrorPrefix  = "Error: "
)
