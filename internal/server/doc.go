// Package server exposes the Campaignifier over HTTP.
//
// Routes:
//
//	POST /v1/campaignify  rewrite a text, see rewriteRequest
//	GET  /health/live     liveness probe
//	GET  /health/ready    readiness probe running the configured checks
//
// Every request gets an ID, taken from the X-Request-ID header when the
// caller sends one, which is echoed in the response and attached to the
// request's log records through RequestIDExtractor.
package server
