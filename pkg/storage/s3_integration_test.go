//go:build integration

package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/campaignify"
	"github.com/dmitrymomot/campaignify/pkg/storage"
)

// Runs against a local S3-compatible server with a "newsletters" bucket.
func newTestStorage(t *testing.T) *storage.S3 {
	t.Helper()

	s, err := storage.New(storage.Config{
		Endpoint:  "http://localhost:9000",
		AccessKey: "admin",
		SecretKey: "admin123",
		Bucket:    "newsletters",
		PathStyle: true,
	})
	require.NoError(t, err)
	require.NoError(t, s.Healthcheck(context.Background()))
	return s
}

func TestS3Integration_Rewrite(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, &storage.Object{
		Key:         "it/issue.html",
		ContentType: "text/html",
		Body:        []byte(`<a href="https://example.com/a">a</a>`),
	}))

	res, err := storage.NewRewriter(s, campaignify.New(), nil).Rewrite(ctx, storage.RewriteInput{
		Key:     "it/issue.html",
		DestKey: "it/issue.tracked.html",
		Params:  campaignify.Params{Campaign: "it"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rewritten)

	obj, err := s.Get(ctx, "it/issue.tracked.html")
	require.NoError(t, err)
	assert.Equal(t, "text/html", obj.ContentType)
	assert.Equal(t, `<a href="https://example.com/a?pk_campaign=it">a</a>`, string(obj.Body))

	info, err := s.Head(ctx, "it/issue.tracked.html")
	require.NoError(t, err)
	assert.Equal(t, int64(len(obj.Body)), info.Size)

	_, err = s.Get(ctx, "it/missing.html")
	require.ErrorIs(t, err, storage.ErrNotFound)
}
