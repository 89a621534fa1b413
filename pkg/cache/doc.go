// Package cache stores rewrite results so identical requests are answered
// without scanning the text again.
//
// Two backends implement [Cache]: [Memory], an LRU with TTL expiration for a
// single process, and [Redis], shared by every instance of the service.
//
//	c := cache.NewMemory[campaignify.Result](cache.WithMaxEntries(10_000))
//	defer c.Close()
//
//	loader := cache.NewLoader[campaignify.Result](c, 10*time.Minute)
//	res, hit, err := loader.Load(ctx, cache.Key(text, campaign, keyword), compute)
//
// [Loader] collapses concurrent misses for the same key into one computation.
// [Key] hashes request fields into a fixed-length key.
package cache
