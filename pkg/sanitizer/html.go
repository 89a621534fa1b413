package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	emailPolicy  *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Newsletter markup: formatting, links, images and layout tables.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowStandardURLs()
		emailPolicy.AllowURLSchemes("http", "https", "mailto")
		emailPolicy.AllowElements(
			"p", "br", "hr", "div", "span",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"strong", "b", "em", "i", "u", "small",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
			"table", "thead", "tbody", "tfoot", "tr", "td", "th",
		)
		emailPolicy.AllowAttrs("href", "title", "target").OnElements("a")
		emailPolicy.AllowImages()
		emailPolicy.AllowAttrs("align", "colspan", "rowspan", "width").OnElements("table", "td", "th")
		emailPolicy.AllowStyling()
	})
}

// StripHTML removes every tag and returns the remaining text.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeHTML keeps markup that is safe in a newsletter body: formatting,
// links, images and tables. Scripts, event handlers and javascript: URLs are
// removed.
func SanitizeHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies policy, or returns s unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
