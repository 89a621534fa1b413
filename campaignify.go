package campaignify

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/campaignify/pkg/logger"
)

// Campaignifier adds campaign tracking parameters to the URLs of a text.
//
// It is immutable once created: the domain allow-list is fixed by New and
// everything else is passed per call, so a single Campaignifier can be shared
// by any number of goroutines.
type Campaignifier struct {
	domains map[string]struct{}
	logger  *slog.Logger
}

// New creates a Campaignifier. Without WithDomains every host is eligible.
func New(opts ...Option) *Campaignifier {
	c := &Campaignifier{
		domains: make(map[string]struct{}),
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Params describes a single rewrite pass.
type Params struct {
	// Campaign is the value of the campaign parameter.
	Campaign string
	// Keyword is an optional keyword template; see ValidateKeyword.
	Keyword string
	// HrefOnly restricts rewriting to URLs inside href attributes.
	HrefOnly bool
}

// Validate checks the params the way callers accepting user input should
// before calling Rewrite. Rewrite itself accepts anything.
func (p Params) Validate() error {
	if strings.TrimSpace(p.Campaign) == "" {
		return ErrEmptyCampaign
	}
	return ValidateKeyword(p.Keyword)
}

// Result is the outcome of Rewrite.
type Result struct {
	Text string `json:"text"`
	// Matched counts every URL found in the text.
	Matched int `json:"matched"`
	// Rewritten counts URLs that received tracking parameters.
	Rewritten int `json:"rewritten"`
	// Preserved counts in-scope URLs that already carried a campaign.
	Preserved int `json:"preserved"`
	// Skipped counts URLs left alone by href-only mode or the domain list.
	Skipped int `json:"skipped"`
}

// Campaignify adds the campaign and, when keyword is not empty, the keyword
// to every eligible URL of text.
func (c *Campaignifier) Campaignify(text, campaign, keyword string) string {
	return c.Rewrite(text, Params{Campaign: campaign, Keyword: keyword}).Text
}

// CampaignifyHref is Campaignify restricted to URLs inside href attributes.
func (c *Campaignifier) CampaignifyHref(text, campaign, keyword string) string {
	return c.Rewrite(text, Params{Campaign: campaign, Keyword: keyword, HrefOnly: true}).Text
}

// Rewrite runs one scan-filter-merge pass over text.
//
// The occurrence number used by the keyword template starts at 1 and grows
// by one for every in-scope URL, including URLs that keep their existing
// campaign. Skipped URLs do not consume a number.
func (c *Campaignifier) Rewrite(text string, p Params) Result {
	res := Result{Text: text}
	kw := parseKeyword(p.Keyword)

	var b strings.Builder
	last, n := 0, 1
	for m := range Matches(text) {
		res.Matched++
		if !c.inScope(m, p.HrefOnly) {
			res.Skipped++
			continue
		}

		merged, changed := merge(m.URL, p.Campaign, kw.format(n))
		n++
		if !changed {
			res.Preserved++
			continue
		}

		if b.Len() == 0 {
			b.Grow(len(text) + 64)
		}
		b.WriteString(text[last:m.URLStart()])
		b.WriteString(merged)
		last = m.End
		res.Rewritten++

		c.logger.Debug("url campaignified",
			slog.String("url", m.URL),
			slog.String("result", merged),
		)
	}

	if res.Rewritten > 0 {
		b.WriteString(text[last:])
		res.Text = b.String()
	}
	return res
}
