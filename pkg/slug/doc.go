// Package slug turns arbitrary text into URL-safe identifiers.
//
// Diacritics are removed through Unicode decomposition, a few Latin letters
// without a decomposition (ß, ł, ø, æ ...) are mapped to ASCII, and every run
// of other characters becomes a single separator:
//
//	slug.Make("Café & Restaurant")                // "cafe-restaurant"
//	slug.Make("Über Größe", slug.Separator("_"))  // "uber_grose"
//	slug.Make("Fish & Chips", slug.CustomReplace(map[string]string{"&": "and"}))
//	// "fish-and-chips"
//
// Scripts without a Latin transliteration (Cyrillic, CJK) are treated as
// separators.
package slug
