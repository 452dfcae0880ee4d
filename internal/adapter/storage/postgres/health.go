package postgres

import "context"

// HealthCheck verifies PostgreSQL connectivity.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Name() string { return "postgres" }

func (h *HealthCheck) Check(ctx context.Context) error {
	return h.pool.Ping(ctx)
}
