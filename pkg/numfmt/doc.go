// Package numfmt formats numbers with locale-specific grouping and decimal
// separators and a fixed number of fraction digits.
//
//	f, err := numfmt.New("de-DE")
//	if err != nil {
//	    return err
//	}
//	f.Format(1234.5, 2) // "1.234,50"
//
//	numfmt.Format(1234.5, 2, "en-US") // "1,234.50"
//
// Locales are BCP 47 tags parsed with golang.org/x/text/language; formatting
// is delegated to golang.org/x/text/message and golang.org/x/text/number.
package numfmt
