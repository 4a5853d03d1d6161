// Package check answers "what shape is this value" and "does it carry content"
// for a value.Value of any kind.
//
// Every function is total: mismatched shapes yield false instead of an error or
// panic, and no function keeps state, so all of them are safe for concurrent use.
//
// # Type predicates
//
// IsTrue, IsFalse, IsNull, IsUndefined, IsSet, IsArray, IsObject, IsString,
// IsNumber, IsInteger, IsFloat, IsBoolean, IsFunction and IsDate classify a
// value by its kind. IsNumber rejects NaN, IsFloat requires a fractional part
// (0 and 123 are not floats) and IsDate rejects the invalid-date sentinel.
//
// # Format predicates
//
// IsNumeric accepts finite numbers and text that parses in full as a finite
// decimal number ("123abc" is rejected). IsEmail applies the deliberately
// simple pattern local@domain.tld, IsURL accepts anything net/url parses as an
// absolute URL and IsUUID accepts any RFC 4122 textual form.
//
// # Emptiness
//
// IsEmpty follows a fixed per-kind table:
//
//	null, undefined   -> empty
//	string            -> empty when blank after trimming
//	seq               -> empty when it has no items
//	map               -> empty when it has no keys
//	number            -> empty when equal to 0
//	bool              -> empty when false
//	anything else     -> not empty
//
// Numeric 0 and false count as empty on purpose. IsBlank, IsPresent and
// IsNotEmpty derive from it; Filled and Blank are aliases of IsPresent and
// IsBlank.
//
//	check.IsEmpty(value.Int(0))          // true
//	check.IsEmpty(value.Of([]int{0}))    // false
//	check.Filled(value.String("  x  "))  // true
package check
