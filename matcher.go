package campaignify

import (
	"iter"
	"regexp"
	"strings"
)

// Character classes of the URL grammar. The apostrophe is left out on purpose
// so that single-quoted href attributes terminate the URL.
const (
	pathChars = `a-z0-9\-._~!$&()*+,;=:@%`
	userChars = `a-z0-9\-._~!$&()*+,;=%`

	octet   = `(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])`
	ipv4    = octet + `(?:\.` + octet + `){3}`
	label   = `[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?`
	tld     = `[a-z](?:[a-z0-9-]{0,61}[a-z0-9])?`
	dnsName = `(?:` + label + `\.)+` + tld
)

// urlPattern captures: 1 = href prefix, 2 = URL, 3 = host.
// DNS names are tried before IPv4 so "1.2.3.4.example.com" is one host.
var urlPattern = regexp.MustCompile(`(?i)` +
	`(href[ \t]*=[ \t]*["'])?` +
	`(https?://` +
	`(?:[` + userChars + `]+(?::[` + userChars + `]*)?@)?` +
	`(` + dnsName + `|` + ipv4 + `)` +
	`(?::[0-9]{1,5})?` +
	`(?:/[` + pathChars + `/]*)?` +
	`(?:\?[` + pathChars + `/?]*)?` +
	`(?:#[` + pathChars + `/?]*)?)`)

// trailingPunct is sentence punctuation that never ends a URL.
const trailingPunct = ".,;:!"

// Match is a single URL occurrence found in a text.
type Match struct {
	// URL is the matched URL without the href prefix.
	URL string
	// HrefPrefix is the literal `href="` or `href='` (whitespace as written)
	// preceding the URL, or empty.
	HrefPrefix string
	// Host is the domain name or IPv4 address, without port or userinfo.
	Host string
	// Start and End delimit the occurrence in the source text,
	// href prefix included.
	Start int
	End   int
}

// URLStart returns the offset of the URL itself in the source text.
func (m Match) URLStart() int {
	return m.End - len(m.URL)
}

// Matches returns the URL occurrences of text in left-to-right order.
// The sequence is lazy: scanning stops as soon as the consumer stops.
func Matches(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		pos := 0
		for pos < len(text) {
			loc := urlPattern.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return
			}

			m, ok := buildMatch(text, pos, loc)
			if !ok {
				pos += loc[1]
				continue
			}
			if !yield(m) {
				return
			}
			pos = m.End
		}
	}
}

// FindAll collects every URL occurrence of text.
func FindAll(text string) []Match {
	var out []Match
	for m := range Matches(text) {
		out = append(out, m)
	}
	return out
}

// buildMatch turns submatch offsets relative to text[pos:] into a Match.
// It reports false when the candidate is not a URL after all.
func buildMatch(text string, pos int, loc []int) (Match, bool) {
	urlStart, urlEnd := pos+loc[4], pos+loc[5]
	hostStart, hostEnd := pos+loc[6], pos+loc[7]

	// The host ran into characters the grammar could not consume,
	// e.g. a fifth digit group or an over-long label.
	if urlEnd == hostEnd && hostRunsOn(text, urlEnd) {
		return Match{}, false
	}

	// A quoted href value ends at its closing quote, so trailing
	// punctuation belongs to the URL there.
	raw := text[urlStart:urlEnd]
	if loc[2] < 0 || !closesQuote(text, pos+loc[3]-1, urlEnd) {
		raw = trimTrailing(raw, hostEnd-urlStart)
	}

	m := Match{
		URL:   raw,
		Host:  text[hostStart:hostEnd],
		Start: urlStart,
		End:   urlStart + len(raw),
	}
	if loc[2] >= 0 {
		m.HrefPrefix = text[pos+loc[2] : pos+loc[3]]
		m.Start = pos + loc[2]
	}
	return m, true
}

// trimTrailing drops sentence punctuation and unbalanced closing parentheses
// from the end of a URL, never cutting into the first minLen bytes.
func trimTrailing(raw string, minLen int) string {
	for len(raw) > minLen {
		c := raw[len(raw)-1]
		switch {
		case c == ';' && strings.HasSuffix(raw, htmlAmp):
			return raw
		case strings.IndexByte(trailingPunct, c) >= 0:
			raw = raw[:len(raw)-1]
		case c == ')' && strings.Count(raw, "(") < strings.Count(raw, ")"):
			raw = raw[:len(raw)-1]
		default:
			return raw
		}
	}
	return raw
}

// closesQuote reports whether the byte at end repeats the quote at open.
func closesQuote(text string, open, end int) bool {
	return end < len(text) && text[end] == text[open]
}

// hostRunsOn reports whether the text at i continues a host name.
func hostRunsOn(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	if isAlnum(text[i]) {
		return true
	}
	return (text[i] == '.' || text[i] == '-') && i+1 < len(text) && isAlnum(text[i+1])
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
