// Package sanitizer cleans HTML before it is rewritten or returned to clients.
//
// StripHTML drops all markup. SanitizeHTML keeps the subset of HTML that is
// common in newsletters (formatting, links, images, tables) and removes
// anything executable. Both are built on bluemonday policies created once and
// shared, which is safe because bluemonday policies are read-only after setup.
package sanitizer
