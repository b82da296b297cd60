// Package health serves liveness and readiness probes for tally watch.
//
// A long-running watch registers a check per dependency, typically the
// history store and the watched path, and exposes them next to /metrics:
//
//	checker := health.New(2 * time.Second)
//	checker.Register("history", func(ctx context.Context) error {
//	    _, err := store.Count(ctx)
//	    return err
//	})
//	health.Register(mux, checker, health.NewVersionInfo(Version, GitCommit, BuildDate))
//
// /health always answers 200 while the process runs. /ready answers 200
// when every check passes and 503 otherwise.
//
// RateLimiter keeps a token bucket per client address; its Middleware
// answers 429 once a client exceeds its rate.
package health
