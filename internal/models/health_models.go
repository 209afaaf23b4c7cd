package models

import "time"

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// CheckStatus is the outcome of a single dependency check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthStatus aggregates per-dependency checks. Status is healthy only
// when every check passed.
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
}

// Healthy reports whether every dependency check passed.
func (h HealthStatus) Healthy() bool {
	return h.Status == StatusHealthy
}
