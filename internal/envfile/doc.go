// Package envfile reads simple environment files (.env format) into an
// ordered, read-only set of entries.
//
// Recognized lines, after trimming surrounding whitespace:
//
//   - blank lines, which drop any pending comment block
//   - comment lines starting with '#', collected into the pending block
//   - assignments containing '=', split on the first '=' only; "=value"
//     is stored under the empty key
//
// Everything else is skipped without error. Lines may be of any length but
// must be valid UTF-8. Values are stored verbatim:
// no quote stripping, escaping or interpolation.
//
// A key that appears more than once keeps only its last value and the
// comments that preceded that last occurrence.
package envfile
