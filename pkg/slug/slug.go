package slug

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that do not decompose into a base letter plus marks.
var folds = map[rune]string{
	'ß': "s", 'ł': "l", 'Ł': "L", 'ø': "o", 'Ø': "O", 'đ': "d", 'Đ': "D",
	'æ': "ae", 'Æ': "AE", 'œ': "oe", 'Œ': "OE", 'þ': "th", 'Þ': "TH", 'ı': "i",
}

type config struct {
	separator  string
	maxLength  int
	lowercase  bool
	stripChars string
	replace    map[string]string
}

// Option configures Make.
type Option func(*config)

// Separator sets the string placed between words. Default "-".
func Separator(sep string) Option {
	return func(c *config) { c.separator = sep }
}

// MaxLength truncates the slug to n characters, dropping any trailing
// separator left by the cut. Zero means unlimited.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = max(n, 0) }
}

// Lowercase controls case conversion. Default true.
func Lowercase(on bool) Option {
	return func(c *config) { c.lowercase = on }
}

// StripChars removes every character of chars before the slug is built.
func StripChars(chars string) Option {
	return func(c *config) { c.stripChars += chars }
}

// CustomReplace replaces substrings before the slug is built. Longer keys
// are applied first.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		if c.replace == nil {
			c.replace = make(map[string]string, len(replacements))
		}
		for k, v := range replacements {
			c.replace[k] = v
		}
	}
}

// Make converts s into an ASCII slug of letters, digits and separators.
func Make(s string, opts ...Option) string {
	cfg := config{separator: "-", lowercase: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(cfg.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}
	s = applyReplacements(s, cfg.replace)
	s = fold(s)

	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteString(cfg.separator)
			pending = false
		}
		if cfg.lowercase {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	out := b.String()
	if cfg.maxLength > 0 && len(out) > cfg.maxLength {
		out = out[:cfg.maxLength]
		if cfg.separator != "" {
			for strings.HasSuffix(out, cfg.separator) {
				out = strings.TrimSuffix(out, cfg.separator)
			}
		}
	}
	return out
}

func applyReplacements(s string, replace map[string]string) string {
	if len(replace) == 0 {
		return s
	}
	keys := make([]string, 0, len(replace))
	for k := range replace {
		if k != "" {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		if n := cmp.Compare(len(b), len(a)); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, " "+replace[k]+" ")
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// fold strips diacritics and maps the remaining special Latin letters to ASCII.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	var b strings.Builder
	b.Grow(len(out))
	for _, r := range out {
		if f, ok := folds[r]; ok {
			b.WriteString(f)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
