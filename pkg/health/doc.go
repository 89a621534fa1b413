// Package health serves liveness and readiness probes.
//
//	checker := health.NewChecker(health.Checks{
//		"redis":  redis.Healthcheck(client),
//		"engine": selfCheck,
//	}, health.WithTimeout(2*time.Second), health.WithLogger(log))
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", checker.ReadinessHandler())
//
// Responses are plain text unless the client asks for JSON through the
// Accept header or ?format=json.
package health
