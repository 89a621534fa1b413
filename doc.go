// Package campaignify adds campaign tracking parameters to the URLs found in
// free-form text, such as newsletter bodies.
//
// Every http or https URL in the text gets a pk_campaign parameter and,
// optionally, a pk_kwd keyword parameter appended to its query string.
// Existing parameters keep their order and their exact encoding, and a URL
// that already carries a campaign is never touched, so running the rewrite
// twice is harmless.
//
// # Quick Start
//
//	c := campaignify.New()
//
//	out := c.Campaignify("Read more at http://example.com/post.", "newsletter-nov", "")
//	// Read more at http://example.com/post?pk_campaign=newsletter-nov.
//
// # Keywords
//
// The keyword is a template. A single %d receives the number of the URL
// within the text, starting at 1:
//
//	c.Campaignify("http://a.com and http://b.com", "news", "link-%d")
//	// http://a.com?pk_campaign=news&pk_kwd=link-1 and http://b.com?pk_campaign=news&pk_kwd=link-2
//
// A template without a placeholder is used for every URL; "%%" stands for a
// percent sign in any template. Use [ValidateKeyword] to reject templates
// with several or unknown verbs before they reach the rewriter; the rewriter
// uses such templates verbatim.
//
// # HTML
//
// [Campaignifier.CampaignifyHref] only rewrites URLs written inside an href
// attribute (href="..." or href='...'), leaving URLs in the surrounding prose
// alone. HTML is not parsed; the attribute is recognized textually. Queries
// using the &amp; entity as separator are extended with the same entity.
//
// # Domains
//
// Rewriting can be restricted to a fixed set of hosts:
//
//	c := campaignify.New(campaignify.WithDomains("example.com", "www.example.com"))
//
// Hosts are compared exactly (ignoring case), so subdomains must be listed
// individually.
//
// # Statistics
//
// [Campaignifier.Rewrite] performs the same pass and also reports how many
// URLs were found, rewritten, preserved or skipped.
//
// # Concurrency
//
// A Campaignifier holds no per-call state and is safe for concurrent use.
package campaignify
