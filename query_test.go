package campaignify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		keyword  string
		expected string
		changed  bool
	}{
		{name: "no query", url: "http://a.com", expected: "http://a.com?pk_campaign=c", changed: true},
		{name: "empty query", url: "http://a.com?", expected: "http://a.com?pk_campaign=c", changed: true},
		{name: "keyword", url: "http://a.com/x", keyword: "k 1", expected: "http://a.com/x?pk_campaign=c&pk_kwd=k+1", changed: true},
		{name: "existing order kept", url: "http://a.com?b=2&a=1", expected: "http://a.com?b=2&a=1&pk_campaign=c", changed: true},
		{name: "valueless param kept", url: "http://a.com?flag", expected: "http://a.com?flag&pk_campaign=c", changed: true},
		{name: "entity separator", url: "http://a.com?a=1&amp;b=2", expected: "http://a.com?a=1&amp;b=2&amp;pk_campaign=c", changed: true},
		{name: "fragment", url: "http://a.com/#x?y", expected: "http://a.com/?pk_campaign=c#x?y", changed: true},
		{name: "keyword key alone is not a campaign", url: "http://a.com?pk_kwd=x", expected: "http://a.com?pk_kwd=x&pk_campaign=c", changed: true},
		{name: "similar key", url: "http://a.com?pk_campaigns=x", expected: "http://a.com?pk_campaigns=x&pk_campaign=c", changed: true},
		{name: "campaign present", url: "http://a.com?pk_campaign=x#f", expected: "http://a.com?pk_campaign=x#f"},
		{name: "campaign without value", url: "http://a.com?x=1&pk_campaign", expected: "http://a.com?x=1&pk_campaign"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, changed := merge(tt.url, "c", tt.keyword)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestEscaperFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a+b%2Cc", escaperFor("")("a b,c"))
	assert.Equal(t, "a+b", escaperFor("q=x+y")("a b"))
	assert.Equal(t, "a%20b", escaperFor("q=x%20y")("a b"))
	assert.Equal(t, "a+b", escaperFor("q=x%20y+z")("a b"))
	assert.Equal(t, "nov%2E", escaperFor("")("nov."))
	assert.Equal(t, "a.b", escaperFor("")("a.b"))
	assert.Equal(t, "a%20b%2E", escaperFor("q=x%20y")("a b."))
}
