// Package sanitizer provides small, stateless helpers that turn display text
// into comparison or presentation forms.
//
// The helpers fall into three groups:
//
//   - Normalization – Normalize and NormalizeString produce a canonical
//     comparison form: trimmed, lowercased, canonically composed and free of
//     combining marks ("  Café " → "cafe"). FoldDiacritics exposes the mark
//     stripping step on its own.
//
//   - Truncation – Truncate and StrLimit cap the length of text and append a
//     single "…" only when something was actually cut off. Lengths count
//     user-perceived characters (grapheme clusters), so multi-byte characters
//     are never split.
//
//   - Presentation – Capitalize, NormalizeWhitespace, Trim and ToLower.
//
// Apply and Compose build pipelines out of any of the string helpers:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeWhitespace,
//	    sanitizer.FoldDiacritics,
//	)
//
//	clean("  Crème   brûlée\n") // "Creme brulee"
//
// # Value-typed helpers
//
// NormalizeString, StrLimit and Capitalize accept a value.Value. NormalizeString
// passes null and undefined through untouched, while StrLimit and Capitalize
// return "" for any value check.IsEmpty considers empty (null, undefined,
// blank text, 0, false, empty containers).
//
// # Error handling
//
// None of the helpers returns an error. Normalization, truncation and
// capitalization are idempotent, and everything here is safe for concurrent use.
package sanitizer
