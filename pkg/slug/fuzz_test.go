package slug_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/slugmin/pkg/slug"
)

var fuzzSeeds = []string{
	"",
	"My Test String!!!1!1",
	"test\nit   now!",
	"  --test_-_cool",
	"Æúű--cool?",
	"You & Me",
	"      user@example.com",
	"RWR - - - - - - -",
	".Pliczek",
	"roman.  txt",
	"__init__.py",
	"a\xffb",
	"Жук 😀 漢字",
}

// swapCase flips the case of ASCII letters only; multi-byte sequences are
// never touched because none of their bytes are below 0x80.
func swapCase(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch {
		case 'a' <= c && c <= 'z':
			b[i] = c - ('a' - 'A')
		case 'A' <= c && c <= 'Z':
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func FuzzSlugify(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		out := slug.Slugify(input)

		if !slug.IsSlug(out) {
			t.Fatalf("Slugify(%q) = %q is not a valid slug", input, out)
		}
		if strings.Contains(out, "--") {
			t.Fatalf("Slugify(%q) = %q contains a double hyphen", input, out)
		}
		if again := slug.Slugify(out); again != out {
			t.Fatalf("Slugify is not idempotent: %q -> %q -> %q", input, out, again)
		}
		if swapped := slug.Slugify(swapCase(input)); swapped != out {
			t.Fatalf("Slugify depends on ASCII case: %q -> %q, swapped -> %q", input, out, swapped)
		}
	})
}

func FuzzSlugifyNormal(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s, false)
		f.Add(s, true)
	}

	f.Fuzz(func(t *testing.T, input string, preserveCase bool) {
		out := slug.SlugifyNormal(input, preserveCase)

		if !slug.IsNormalSlug(out, preserveCase) {
			t.Fatalf("SlugifyNormal(%q, %t) = %q has an invalid shape", input, preserveCase, out)
		}
		for _, bad := range []string{"--", "  ", ".."} {
			if strings.Contains(out, bad) {
				t.Fatalf("SlugifyNormal(%q, %t) = %q contains %q", input, preserveCase, out, bad)
			}
		}
		if !preserveCase && strings.ToLower(out) != out {
			t.Fatalf("SlugifyNormal(%q, false) = %q contains uppercase", input, out)
		}
	})
}
