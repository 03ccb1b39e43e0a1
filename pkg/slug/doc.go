// Package slug converts arbitrary Unicode text into predictable ASCII
// identifiers suitable for file names and URL path segments.
//
// Every input code point goes through a single left-to-right pass: non-ASCII
// code points are transliterated to ASCII (see package translit), each
// resulting byte is classified, and runs of separators are collapsed so the
// output never starts or ends with one and never repeats one.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/slugmin/pkg/slug"
//
//	slug.Slugify("My Test String!!!1!1")  // "my-test-string-1-1"
//	slug.Slugify("  --test_-_cool")       // "test-cool"
//	slug.Slugify("You & Me")              // "you-me"
//
// # Modes
//
// Strict mode (Slugify) emits only [a-z0-9] and single hyphens. The result
// always matches ^[a-z0-9]+(-[a-z0-9]+)*$ or is empty.
//
// Normal mode (SlugifyNormal) additionally keeps spaces, underscores and dots,
// collapsing runs of each, and can preserve letter case:
//
//	slug.SlugifyNormal("My Test String!!!1!1", false) // "my test string-1-1"
//	slug.SlugifyNormal("You & Me", false)             // "you - me"
//	slug.SlugifyNormal("RWR - - - - - - -", true)     // "RWR"
//	slug.SlugifyNormal("roman.  txt", true)           // "roman. txt"
//
// Spaces and underscores form one class: a run of them keeps only the first.
// Leading spaces, underscores and hyphens are dropped; trailing spaces and
// hyphens are trimmed. Dots are kept anywhere, so ".Pliczek" stays as it is.
//
// Case folding is plain ASCII byte arithmetic. Only A-Z are lowercased.
//
// # Transliteration
//
// Non-ASCII code points are looked up in a translit.Transliterator, by default
// translit.Unidecode(). A code point without a mapping becomes a separator.
// A code point mapped explicitly to "" produces nothing:
//
//	enc := slug.New(slug.WithTransliterator(translit.Chain(
//		translit.Table{'\u00ad': ""}, // soft hyphen vanishes
//		translit.Unidecode(),
//	)))
//	enc.Encode("co\u00adop") // "coop"
//
// Mappings that contain non-ASCII bytes are treated as missing.
//
// # Configuration Options
//
// Make and New accept options. Beyond the mode and table, they add
// post-processing that Slugify and SlugifyNormal never apply:
//
//	slug.Make("Long Article Title", slug.MaxLength(12))  // "long-article"
//	slug.Make("Article Title", slug.WithSuffix(6))       // "article-title-x3k7f9"
//	slug.Make("admin", slug.ReservedSlugs("admin"))      // "admin-k7x2m4"
//
// MaxLength cuts the slug and removes separators left dangling at the end.
// WithSuffix appends random characters from crypto/rand, shortening the base
// when a MaxLength is also set. ReservedSlugs appends a 6 character suffix when
// the slug matches a reserved word, ignoring case. MinLength pads short slugs
// the same way, with a suffix long enough to reach the minimum.
//
// StripChars and CustomReplace rewrite the input before it is encoded. They
// are the way to change how ASCII characters are handled, since the
// transliterator only sees non-ASCII code points:
//
//	slug.Make("Price: $100", slug.StripChars("$:"))                        // "price-100"
//	slug.Make("Fish & Chips", slug.CustomReplace(map[string]string{"&": "and"})) // "fish-and-chips"
//
// There is no separator option. The hyphen is part of both modes' alphabets
// and validators.
//
// # Validation
//
// IsSlug and IsNormalSlug check whether a string has the shape the
// corresponding mode produces. Encoder.Valid picks the right check for an
// encoder's mode.
//
// All functions are safe for concurrent use.
package slug
