package campaignify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/campaignify"
)

func TestFindAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		urls  []string
		hosts []string
	}{
		{
			name:  "plain url",
			text:  "go to http://example.com now",
			urls:  []string{"http://example.com"},
			hosts: []string{"example.com"},
		},
		{
			name:  "path query and fragment",
			text:  "https://example.com/a/b.html?x=1&y=%20#top",
			urls:  []string{"https://example.com/a/b.html?x=1&y=%20#top"},
			hosts: []string{"example.com"},
		},
		{
			name:  "userinfo and port",
			text:  "http://bob:pw@sub.example.co.uk:8080/x",
			urls:  []string{"http://bob:pw@sub.example.co.uk:8080/x"},
			hosts: []string{"sub.example.co.uk"},
		},
		{
			name:  "ipv4",
			text:  "http://10.0.0.255:81/",
			urls:  []string{"http://10.0.0.255:81/"},
			hosts: []string{"10.0.0.255"},
		},
		{
			name:  "dns name with numeric labels",
			text:  "http://1.2.3.4.example.com/",
			urls:  []string{"http://1.2.3.4.example.com/"},
			hosts: []string{"1.2.3.4.example.com"},
		},
		{
			name:  "trailing punctuation",
			text:  "http://a.com. http://b.com/x, http://c.com/y;! http://d.com/?q=1:",
			urls:  []string{"http://a.com", "http://b.com/x", "http://c.com/y", "http://d.com/?q=1"},
			hosts: []string{"a.com", "b.com", "c.com", "d.com"},
		},
		{
			name:  "trailing question mark is kept",
			text:  "http://a.com?",
			urls:  []string{"http://a.com?"},
			hosts: []string{"a.com"},
		},
		{
			name:  "unbalanced parenthesis",
			text:  "(http://a.com/x) and (http://b.com/y_(z))",
			urls:  []string{"http://a.com/x", "http://b.com/y_(z)"},
			hosts: []string{"a.com", "b.com"},
		},
		{
			name:  "quotes and angle brackets terminate",
			text:  `"http://a.com/x" 'http://b.com/y' <http://c.com/z>`,
			urls:  []string{"http://a.com/x", "http://b.com/y", "http://c.com/z"},
			hosts: []string{"a.com", "b.com", "c.com"},
		},
		{
			name: "no dotted host",
			text: "http://localhost/ and http://intranet:8080",
		},
		{
			name: "invalid ipv4",
			text: "http://256.1.1.1/ and http://1.2.3.4.5",
		},
		{
			name: "unsupported scheme",
			text: "ftp://example.com mailto:me@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matches := campaignify.FindAll(tt.text)

			var urls, hosts []string
			for _, m := range matches {
				urls = append(urls, m.URL)
				hosts = append(hosts, m.Host)
				assert.Equal(t, m.HrefPrefix+m.URL, tt.text[m.Start:m.End])
			}
			assert.Equal(t, tt.urls, urls)
			assert.Equal(t, tt.hosts, hosts)
		})
	}
}

func TestFindAll_HrefPrefix(t *testing.T) {
	t.Parallel()

	text := `<a href="http://a.com/">x</a> <a HREF = 'http://b.com/'>y</a> http://c.com/`

	matches := campaignify.FindAll(text)
	require.Len(t, matches, 3)

	assert.Equal(t, `href="`, matches[0].HrefPrefix)
	assert.Equal(t, `HREF = '`, matches[1].HrefPrefix)
	assert.Empty(t, matches[2].HrefPrefix)

	for _, m := range matches {
		assert.Equal(t, m.URL, text[m.URLStart():m.End])
	}
}

func TestFindAll_QuotedHrefKeepsPunctuation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		url  string
	}{
		{text: `<a href="http://a.com/x.">`, url: "http://a.com/x."},
		{text: `<a href='http://a.com/?q=go;'>`, url: "http://a.com/?q=go;"},
		{text: `<a href="http://a.com/x.'>`, url: "http://a.com/x"},
		{text: `See http://a.com/x.`, url: "http://a.com/x"},
		{text: `See http://a.com/?x=1&amp;`, url: "http://a.com/?x=1&amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			matches := campaignify.FindAll(tt.text)
			require.Len(t, matches, 1)
			assert.Equal(t, tt.url, matches[0].URL)
		})
	}
}

func TestMatches_StopsEarly(t *testing.T) {
	t.Parallel()

	var seen []string
	for m := range campaignify.Matches("http://a.com http://b.com http://c.com") {
		seen = append(seen, m.Host)
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"a.com", "b.com"}, seen)
}
