// Command campaignify adds campaign tracking parameters to the URLs of
// texts, newsletters and stored archives, and serves the same rewrite over
// HTTP.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/campaignify"
	"github.com/dmitrymomot/campaignify/internal/config"
	"github.com/dmitrymomot/campaignify/internal/server"
	"github.com/dmitrymomot/campaignify/pkg/logger"
)

const sentryFlushTimeout = 2 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

// cli holds state shared by the subcommands, set up before any of them runs.
type cli struct {
	cfg     config.Config
	logger  *slog.Logger
	verbose bool
	domains []string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "campaignify",
		Short: "Add campaign tracking parameters to URLs",
		Long: `campaignify appends pk_campaign and pk_kwd query parameters to every
http and https URL it finds, leaving existing parameters untouched and
skipping URLs that already carry a campaign.

Configuration is read from the environment (LOG_*, REDIS_*, S3_*, RESEND_*,
MAILER_*, HTTP_*, CACHE_*, CAMPAIGNIFY_DOMAINS); flags take precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.Flush(sentryFlushTimeout)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log every rewritten URL to stderr")
	flags.StringSliceVar(&c.domains, "domain", nil, "only rewrite URLs on this host (repeatable)")

	root.AddCommand(
		newRewriteCmd(c),
		newServeCmd(c),
		newS3Cmd(c),
		newSendCmd(c),
	)
	return root
}

func (c *cli) init(stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.verbose {
		cfg.Log.Level = "debug"
		cfg.Log.Format = logger.FormatText
	}
	cfg.Domains = append(cfg.Domains, c.domains...)

	log, err := logger.New(cfg.Log, stderr, server.RequestIDExtractor())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	c.cfg = cfg
	c.logger = log
	return nil
}

func (c *cli) engine() *campaignify.Campaignifier {
	return campaignify.New(
		campaignify.WithDomains(c.cfg.Domains...),
		campaignify.WithLogger(c.logger),
	)
}

// addParamFlags registers the flags shared by every rewriting command.
func addParamFlags(cmd *cobra.Command, p *campaignify.Params, hrefOnly bool) {
	flags := cmd.Flags()
	flags.StringVarP(&p.Campaign, "campaign", "c", "", "campaign name (pk_campaign)")
	flags.StringVarP(&p.Keyword, "keyword", "k", "", "keyword template (pk_kwd); %d is replaced by the URL number")
	if hrefOnly {
		flags.BoolVar(&p.HrefOnly, "href-only", false, "only rewrite URLs inside href attributes")
	}
}
