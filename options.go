package campaignify

import "log/slog"

// Option configures a Campaignifier.
type Option func(*Campaignifier)

// WithDomains restricts rewriting to URLs whose host is one of domains.
// Matching is exact and case-insensitive; list subdomains separately.
// Empty entries are ignored, and repeated calls extend the list.
func WithDomains(domains ...string) Option {
	return func(c *Campaignifier) {
		for _, d := range domains {
			if d = normalizeHost(d); d != "" {
				c.domains[d] = struct{}{}
			}
		}
	}
}

// WithLogger sets the logger receiving a debug record for every rewritten URL.
// If nil, logging stays disabled.
func WithLogger(l *slog.Logger) Option {
	return func(c *Campaignifier) {
		if l != nil {
			c.logger = l
		}
	}
}
