package campaignify

import "strings"

// inScope decides whether m may be rewritten. Hosts are compared exactly,
// ignoring case: "www.example.com" and "example.com" are different entries.
func (c *Campaignifier) inScope(m Match, hrefOnly bool) bool {
	if hrefOnly && m.HrefPrefix == "" {
		return false
	}
	if len(c.domains) == 0 {
		return true
	}
	_, ok := c.domains[normalizeHost(m.Host)]
	return ok
}

// Domains returns the allow-list, or nil when every host is eligible.
func (c *Campaignifier) Domains() []string {
	if len(c.domains) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.domains))
	for d := range c.domains {
		out = append(out, d)
	}
	return out
}

func normalizeHost(host string) string {
	return strings.ToLower(strings.TrimSpace(host))
}
