package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/campaignify"
)

func newRewriteCmd(c *cli) *cobra.Command {
	var (
		params  campaignify.Params
		inPlace bool
	)

	cmd := &cobra.Command{
		Use:   "rewrite [file...]",
		Short: "Campaignify files or standard input",
		Long: `Reads each file (or standard input when none is given), adds the campaign
parameters to its URLs and writes the result to standard output, or back to
the file with --in-place.

Example:
  campaignify rewrite -c newsletter-nov-2012 -k 'link%d' newsletter.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := params.Validate(); err != nil {
				return err
			}
			if inPlace && len(args) == 0 {
				return errors.New("--in-place needs at least one file")
			}

			engine := c.engine()
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				res := engine.Rewrite(string(data), params)
				c.report("stdin", res)
				_, err = io.WriteString(cmd.OutOrStdout(), res.Text)
				return err
			}

			for _, name := range args {
				if err := c.rewriteFile(cmd.OutOrStdout(), engine, name, params, inPlace); err != nil {
					return err
				}
			}
			return nil
		},
	}

	addParamFlags(cmd, &params, true)
	cmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "overwrite the files instead of printing them")
	return cmd
}

func (c *cli) rewriteFile(out io.Writer, engine *campaignify.Campaignifier, name string, p campaignify.Params, inPlace bool) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	res := engine.Rewrite(string(data), p)
	c.report(name, res)

	if !inPlace {
		_, err := io.WriteString(out, res.Text)
		return err
	}
	if res.Rewritten == 0 {
		return nil
	}

	info, err := os.Stat(name)
	if err != nil {
		return err
	}
	return os.WriteFile(name, []byte(res.Text), info.Mode().Perm())
}

func (c *cli) report(source string, res campaignify.Result) {
	c.logger.Info("campaignified",
		slog.String("source", source),
		slog.Int("matched", res.Matched),
		slog.Int("rewritten", res.Rewritten),
		slog.Int("preserved", res.Preserved),
		slog.Int("skipped", res.Skipped),
	)
}
