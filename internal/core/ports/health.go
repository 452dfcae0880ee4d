package ports

import "context"

// HealthChecker verifies connectivity to an external dependency.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
