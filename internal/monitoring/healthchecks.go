package monitoring

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/textscope/textscope/internal/models"
)

// HealthSample is the fixed probe string every dependency check runs on.
const HealthSample = "test"

const healthCheckInterval = 15 * time.Second

// HealthChecker reports whether one analyzer dependency is usable.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context, sample string) error
}

type checker struct {
	name string
	fn   func(ctx context.Context, sample string) error
}

func (c checker) Name() string { return c.name }

func (c checker) Check(ctx context.Context, sample string) error {
	return c.fn(ctx, sample)
}

// NewChecker adapts a function to HealthChecker.
func NewChecker(name string, fn func(ctx context.Context, sample string) error) HealthChecker {
	return checker{name: name, fn: fn}
}

// RunChecks exercises every checker against the fixed sample string. A
// panicking check is reported as unhealthy, never propagated.
func RunChecks(ctx context.Context, checkers []HealthChecker) models.HealthStatus {
	status := models.HealthStatus{
		Status:    models.StatusHealthy,
		Timestamp: time.Now().UTC(),
		Checks:    make(map[string]models.CheckStatus, len(checkers)),
	}

	for _, c := range checkers {
		if err := runCheck(ctx, c); err != nil {
			status.Status = models.StatusUnhealthy
			status.Checks[c.Name()] = models.CheckStatus{
				Status:  models.StatusUnhealthy,
				Message: err.Error(),
			}
			continue
		}
		status.Checks[c.Name()] = models.CheckStatus{Status: models.StatusHealthy}
	}

	return status
}

func runCheck(ctx context.Context, c HealthChecker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("check panicked: %v", r)
		}
	}()
	return c.Check(ctx, HealthSample)
}

// Monitor periodically re-runs the checks, stores the overall result in
// healthy, and logs every analyzer that has gone unhealthy.
func Monitor(ctx context.Context, checkers []HealthChecker, healthy *atomic.Bool) {
	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			status := RunChecks(ctx, checkers)
			healthy.Store(status.Healthy())
			for name, check := range status.Checks {
				if check.Status != models.StatusHealthy {
					slog.Warn("[HealthCheck] Analyzer is unhealthy",
						slog.String("analyzer", name),
						slog.String("error", check.Message))
				}
			}
		}
	}
}
