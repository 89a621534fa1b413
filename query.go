package campaignify

import (
	"net/url"
	"strings"
)

// Query parameter names. They follow the Matomo/Piwik convention.
const (
	CampaignKey = "pk_campaign"
	KeywordKey  = "pk_kwd"
)

// htmlAmp is the entity-encoded separator found in href attributes of
// generated HTML.
const htmlAmp = "&amp;"

// merge adds the campaign (and keyword, if any) to the query string of rawURL.
// Existing segments are copied byte for byte. A URL that already carries a
// campaign is returned unchanged and merge reports false.
func merge(rawURL, campaign, keyword string) (string, bool) {
	base, fragment := rawURL, ""
	if i := strings.IndexByte(base, '#'); i >= 0 {
		base, fragment = base[:i], base[i:]
	}

	prefix, query, _ := strings.Cut(base, "?")
	query = strings.TrimLeft(query, "?")

	if hasParam(query, CampaignKey) {
		return rawURL, false
	}

	sep := "&"
	if strings.Contains(query, htmlAmp) {
		sep = htmlAmp
	}
	escape := escaperFor(query)

	var b strings.Builder
	b.Grow(len(rawURL) + len(CampaignKey) + len(campaign) + len(KeywordKey) + len(keyword) + 8)
	b.WriteString(prefix)
	b.WriteByte('?')
	if query != "" {
		b.WriteString(query)
		if !strings.HasSuffix(query, "&") && !strings.HasSuffix(query, sep) {
			b.WriteString(sep)
		}
	}
	b.WriteString(CampaignKey)
	b.WriteByte('=')
	b.WriteString(escape(campaign))
	if keyword != "" {
		b.WriteString(sep)
		b.WriteString(KeywordKey)
		b.WriteByte('=')
		b.WriteString(escape(keyword))
	}
	b.WriteString(fragment)

	return b.String(), true
}

// hasParam reports whether the raw query contains key. Keys are decoded for
// the comparison; a key with broken percent-encoding is compared as written.
func hasParam(query, key string) bool {
	if query == "" {
		return false
	}
	query = strings.ReplaceAll(query, htmlAmp, "&")
	for segment := range strings.SplitSeq(query, "&") {
		k, _, _ := strings.Cut(segment, "=")
		if decoded, err := url.QueryUnescape(k); err == nil {
			k = decoded
		}
		if k == key {
			return true
		}
	}
	return false
}

// escaperFor returns a value encoder matching the space encoding already used
// by query: "%20" when the query uses it and never uses "+", "+" otherwise.
// A trailing dot is encoded too, since linkifiers drop it as punctuation.
func escaperFor(query string) func(string) string {
	spaces := strings.Contains(query, "%20") && !strings.Contains(query, "+")
	return func(s string) string {
		v := url.QueryEscape(s)
		if spaces {
			v = strings.ReplaceAll(v, "+", "%20")
		}
		if strings.HasSuffix(v, ".") {
			v = v[:len(v)-1] + "%2E"
		}
		return v
	}
}
