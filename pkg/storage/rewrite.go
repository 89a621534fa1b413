package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/campaignify"
	"github.com/dmitrymomot/campaignify/pkg/logger"
)

// RewriteInput selects the object to campaignify.
type RewriteInput struct {
	// Key is the source object.
	Key string
	// DestKey receives the result; empty means Key is overwritten.
	DestKey string
	Params  campaignify.Params
	// ForceText rewrites every URL of an HTML object, not only hrefs.
	ForceText bool
	// DryRun computes the result without writing it.
	DryRun bool
}

// Rewriter campaignifies stored newsletter archives.
type Rewriter struct {
	store  Store
	engine *campaignify.Campaignifier
	logger *slog.Logger
}

// NewRewriter ties a store to an engine. log may be nil.
func NewRewriter(store Store, engine *campaignify.Campaignifier, log *slog.Logger) *Rewriter {
	if log == nil {
		log = logger.NewNope()
	}
	return &Rewriter{store: store, engine: engine, logger: log}
}

// Rewrite loads the object, adds campaign parameters to its URLs and writes
// it back with its content type. HTML objects are rewritten in href-only
// mode unless ForceText is set. Nothing is written when no URL changed and
// the destination is the source.
func (r *Rewriter) Rewrite(ctx context.Context, in RewriteInput) (campaignify.Result, error) {
	if err := in.Params.Validate(); err != nil {
		return campaignify.Result{}, err
	}

	obj, err := r.store.Get(ctx, in.Key)
	if err != nil {
		return campaignify.Result{}, err
	}

	params := in.Params
	params.HrefOnly = params.HrefOnly || (obj.IsHTML() && !in.ForceText)

	res := r.engine.Rewrite(string(obj.Body), params)

	dest := in.DestKey
	if dest == "" {
		dest = in.Key
	}
	log := r.logger.With(
		slog.String("key", in.Key),
		slog.String("dest", dest),
		slog.Bool("href_only", params.HrefOnly),
		slog.Int("rewritten", res.Rewritten),
	)

	if in.DryRun || (res.Rewritten == 0 && dest == in.Key) {
		log.InfoContext(ctx, "object left unchanged", slog.Bool("dry_run", in.DryRun))
		return res, nil
	}

	out := &Object{Key: dest, ContentType: obj.ContentType, Body: []byte(res.Text)}
	if err := r.store.Put(ctx, out); err != nil {
		return res, fmt.Errorf("write %s: %w", dest, err)
	}

	log.InfoContext(ctx, "object campaignified")
	return res, nil
}
