// Package mailer renders markdown newsletters and sends them with tracked
// links.
//
// A newsletter template is markdown with YAML frontmatter:
//
//	---
//	Subject: News for {{.Month}}
//	Campaign: newsletter-{{.Month}}
//	Keyword: link-%d
//	---
//	Read the [release notes](https://example.com/releases) or visit
//	https://example.com/blog.
//
// The body is executed as a text/template, converted to HTML with goldmark
// and wrapped in an html/template layout that receives .Content and
// .Metadata. The executed markdown doubles as the plain-text part.
//
// # Campaigns
//
// Before sending, every link of the HTML part and every URL of the text part
// gets the campaign parameters. The campaign comes from SendParams, then the
// frontmatter, then a slug of the subject ("News for May" becomes
// "news-for-may"). The email is tagged with the campaign under
// Config.CampaignTag.
//
// # Usage
//
//	m := mailer.New(resend.New(resendCfg), mailer.NewRenderer(os.DirFS("newsletters")), cfg)
//	_, err := m.Send(ctx, mailer.SendParams{
//		To:       []string{"list@example.com"},
//		Template: "2024-05.md",
//		Data:     map[string]string{"Month": "may"},
//	})
//
// Prepare does everything except sending, for previews and dry runs.
package mailer
