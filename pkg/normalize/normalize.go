// Package normalize provides the string canonicalization shared by the
// alias resolver and the catalog tooling. Normalization is a projection:
// applying it twice yields the same result as applying it once.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ampersands matches a run of & characters with any surrounding whitespace.
var ampersands = regexp.MustCompile(`\s*&+\s*`)

// stripMarks decomposes to NFD, drops combining marks, and recomposes,
// turning accented letters into their ASCII bases ("Café" -> "Cafe").
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// String canonicalizes s for comparison. The pipeline order is fixed:
// trim and lowercase, strip diacritics, rewrite "&" as "and", then
// collapse repeated whitespace.
func String(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	s = ampersands.ReplaceAllString(s, " and ")
	return strings.Join(strings.Fields(s), " ")
}

// soapSuffix is the trailing word that gets a virtual alias: brands and
// scents are commonly written both with and without it.
const soapSuffix = "soap"

// SoapVariant derives the virtual suffix alias of an already-normalized
// string: the same string with a trailing "soap" word removed. The second
// return is false when s does not end in the suffix or nothing would remain
// after stripping it. The variant is computed on the fly, never persisted.
func SoapVariant(s string) (string, bool) {
	if !strings.HasSuffix(s, " "+soapSuffix) {
		return "", false
	}
	v := strings.TrimSpace(strings.TrimSuffix(s, soapSuffix))
	if v == "" {
		return "", false
	}
	return v, true
}

// Variants returns the normalized form of s followed by its virtual suffix
// alias, when one exists.
func Variants(s string) []string {
	n := String(s)
	if v, ok := SoapVariant(n); ok {
		return []string{n, v}
	}
	return []string{n}
}
