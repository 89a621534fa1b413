// Package storage campaignifies newsletter archives kept in S3-compatible
// object storage.
//
//	store, err := storage.New(storage.Config{
//		Bucket:    "newsletters",
//		AccessKey: os.Getenv("S3_ACCESS_KEY"),
//		SecretKey: os.Getenv("S3_SECRET_KEY"),
//		Endpoint:  "http://localhost:9000",
//		PathStyle: true,
//	})
//	if err != nil {
//		return err
//	}
//
//	rw := storage.NewRewriter(store, campaignify.New(), log)
//	res, err := rw.Rewrite(ctx, storage.RewriteInput{
//		Key:    "2012/11/newsletter.html",
//		Params: campaignify.Params{Campaign: "newsletter-nov-2012"},
//	})
//
// HTML objects only get their href attributes rewritten; other content types
// are rewritten as plain text. Objects are loaded into memory and bounded by
// Config.MaxObjectSize.
//
// Errors are normalized to the package sentinels (ErrNotFound,
// ErrAccessDenied, ...) and should be matched with errors.Is.
package storage
