package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/campaignify"
	"github.com/dmitrymomot/campaignify/pkg/storage"
)

func newS3Cmd(c *cli) *cobra.Command {
	var in storage.RewriteInput

	cmd := &cobra.Command{
		Use:   "s3",
		Short: "Campaignify an object stored in S3",
		Long: `Downloads an object from the S3_BUCKET bucket, adds the campaign
parameters to its URLs and uploads the result to the same key or to --dest.
HTML objects only get their href attributes rewritten unless --force-text
is set.

Example:
  campaignify s3 --key archive/2012-11.html -c newsletter-nov-2012`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := storage.New(c.cfg.Storage)
			if err != nil {
				return err
			}

			res, err := storage.NewRewriter(store, c.engine(), c.logger).Rewrite(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res, in.DryRun)
		},
	}

	addParamFlags(cmd, &in.Params, true)
	flags := cmd.Flags()
	flags.StringVar(&in.Key, "key", "", "source object key")
	flags.StringVar(&in.DestKey, "dest", "", "destination key (default: overwrite the source)")
	flags.BoolVar(&in.ForceText, "force-text", false, "rewrite every URL of HTML objects, not only hrefs")
	flags.BoolVar(&in.DryRun, "dry-run", false, "print the result instead of uploading it")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func printResult(w io.Writer, res campaignify.Result, withText bool) error {
	if withText {
		if _, err := io.WriteString(w, res.Text+"\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "matched=%d rewritten=%d preserved=%d skipped=%d\n",
		res.Matched, res.Rewritten, res.Preserved, res.Skipped)
	return err
}
