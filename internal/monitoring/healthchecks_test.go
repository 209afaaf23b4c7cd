package monitoring

import (
	"context"
	"errors"
	"testing"

	"github.com/textscope/textscope/internal/models"
)

func TestRunChecksAllHealthy(t *testing.T) {
	checkers := []HealthChecker{
		NewChecker("sentiment", func(context.Context, string) error { return nil }),
		NewChecker("entities", func(context.Context, string) error { return nil }),
	}

	status := RunChecks(context.Background(), checkers)
	if !status.Healthy() {
		t.Errorf("status = %q, want healthy", status.Status)
	}
	for name, check := range status.Checks {
		if check.Status != models.StatusHealthy {
			t.Errorf("check %q = %+v, want healthy", name, check)
		}
	}
}

func TestRunChecksFlagsExactlyTheFailingDependency(t *testing.T) {
	bad := errors.New("lexicon missing")
	checkers := []HealthChecker{
		NewChecker("sentiment", func(context.Context, string) error { return nil }),
		NewChecker("emotions", func(context.Context, string) error { return bad }),
	}

	status := RunChecks(context.Background(), checkers)
	if status.Healthy() {
		t.Error("status healthy despite failing check")
	}
	if got := status.Checks["sentiment"].Status; got != models.StatusHealthy {
		t.Errorf("sentiment check = %q, want healthy", got)
	}
	if got := status.Checks["emotions"]; got.Status != models.StatusUnhealthy || got.Message != "lexicon missing" {
		t.Errorf("emotions check = %+v", got)
	}
}

func TestRunChecksRecoversPanickingCheck(t *testing.T) {
	checkers := []HealthChecker{
		NewChecker("entities", func(context.Context, string) error { panic("model data corrupt") }),
	}

	status := RunChecks(context.Background(), checkers)
	if status.Healthy() {
		t.Error("status healthy despite panicking check")
	}
	if got := status.Checks["entities"]; got.Status != models.StatusUnhealthy || got.Message == "" {
		t.Errorf("entities check = %+v", got)
	}
}

func TestCheckersReceiveTheFixedSample(t *testing.T) {
	var got string
	checkers := []HealthChecker{
		NewChecker("sentiment", func(_ context.Context, sample string) error {
			got = sample
			return nil
		}),
	}

	RunChecks(context.Background(), checkers)
	if got != HealthSample {
		t.Errorf("sample = %q, want %q", got, HealthSample)
	}
}
