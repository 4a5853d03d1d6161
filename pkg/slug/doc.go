// Package slug derives URL-safe tokens from arbitrary display text.
//
// A slug contains only lowercase ASCII letters, digits, underscores and single
// hyphens, and never starts or ends with a hyphen:
//
//	slug.Make("Café Français")   // "cafe-francais"
//	slug.Make("Hello---World")   // "hello-world"
//	slug.Make("Price: $19.99")   // "price-1999"
//	slug.From(value.Float(123.45)) // "12345"
//
// Accented Latin letters lose their accent through canonical decomposition.
// Letters that do not decompose (for example "ø" or "ß") and all other
// punctuation are removed rather than transliterated. Punctuation does not
// become a separator: only whitespace does.
//
// # Options
//
//   - MaxLength caps the slug length.
//   - WithSuffix appends a random suffix generated with crypto/rand.
//
// All functions are safe for concurrent use.
package slug
