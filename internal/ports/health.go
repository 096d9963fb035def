package ports

import "context"

// HealthChecker is a dependency the readiness probe can ask about: the
// backend transport, the local store or the settings backend.
type HealthChecker interface {
	// Name keys the checker in readiness output ("woocommerce", "storage").
	Name() string
	// HealthCheck returns nil when the dependency is usable. It must give up
	// when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them per probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps each checker's name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
