package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/campaignify/pkg/mailer"
	"github.com/dmitrymomot/campaignify/pkg/mailer/resend"
)

var errNoAPIKey = errors.New("RESEND_API_KEY is not set")

func newSendCmd(c *cli) *cobra.Command {
	var (
		params mailer.SendParams
		dir    string
		data   map[string]string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Render a newsletter template, campaignify its links and send it",
		Long: `Renders a markdown template with YAML frontmatter from --dir (layouts are
read from its layouts/ subdirectory), adds the campaign parameters to every
link and sends the result through Resend.

The campaign defaults to the template's "campaign" frontmatter key, then to
a slug of the subject.

Example:
  campaignify send --dir ./newsletters --template 2012-11.md --to team@example.com --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Data = data
			renderer := mailer.NewRenderer(os.DirFS(dir))

			if dryRun {
				m := mailer.New(nil, renderer, c.cfg.Mailer,
					mailer.WithCampaignifier(c.engine()),
					mailer.WithLogger(c.logger),
				)
				email, err := m.Prepare(params)
				if err != nil {
					return err
				}
				return printEmail(cmd.OutOrStdout(), email)
			}

			if c.cfg.Resend.APIKey == "" {
				return errNoAPIKey
			}
			m := mailer.New(resend.New(c.cfg.Resend), renderer, c.cfg.Mailer,
				mailer.WithCampaignifier(c.engine()),
				mailer.WithLogger(c.logger),
			)
			_, err := m.Send(cmd.Context(), params)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&dir, "dir", ".", "template directory")
	flags.StringVarP(&params.Template, "template", "t", "", "template file inside --dir")
	flags.StringVar(&params.Layout, "layout", "", "layout file inside <dir>/layouts (default from MAILER_DEFAULT_LAYOUT)")
	flags.StringSliceVar(&params.To, "to", nil, "recipient (repeatable)")
	flags.StringVar(&params.Subject, "subject", "", "subject, overriding the frontmatter")
	flags.StringVar(&params.From, "from", "", "sender, overriding RESEND_FROM_EMAIL")
	flags.StringVarP(&params.Campaign, "campaign", "c", "", "campaign, overriding the frontmatter")
	flags.StringVarP(&params.Keyword, "keyword", "k", "", "keyword template, overriding the frontmatter")
	flags.StringToStringVar(&data, "data", nil, "template data as key=value pairs")
	flags.BoolVar(&dryRun, "dry-run", false, "print the prepared email instead of sending it")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func printEmail(w io.Writer, email *mailer.Email) error {
	_, err := fmt.Fprintf(w, "To: %v\nSubject: %s\n", email.To, email.Subject)
	for _, k := range slices.Sorted(maps.Keys(email.Tags)) {
		if err == nil {
			_, err = fmt.Fprintf(w, "Tag: %s=%v\n", k, email.Tags[k])
		}
	}
	if err == nil {
		_, err = fmt.Fprintf(w, "\n--- text ---\n%s\n--- html ---\n%s\n", email.Text, email.HTML)
	}
	return err
}
