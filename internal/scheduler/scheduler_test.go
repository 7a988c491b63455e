package scheduler

import (
	"errors"
	"testing"
)

type fakeSweeper struct {
	sweeps  int
	removed int
	left    int
}

func (f *fakeSweeper) Sweep() int {
	f.sweeps++
	return f.removed
}

func (f *fakeSweeper) Len() int {
	return f.left
}

func TestSweepSessions(t *testing.T) {
	sweeper := &fakeSweeper{removed: 3, left: 1}

	if got := SweepSessions(sweeper); got != 3 {
		t.Fatalf("expected 3 removed, got %d", got)
	}
	if sweeper.sweeps != 1 {
		t.Fatalf("expected one sweep, got %d", sweeper.sweeps)
	}
}

func TestAddJobValidation(t *testing.T) {
	svc, err := New()
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	t.Cleanup(func() {
		_ = svc.Stop()
	})

	if _, err := svc.AddJob(" ", "* * * * *", func() {}); !errors.Is(err, ErrEmptyJobName) {
		t.Fatalf("expected ErrEmptyJobName, got %v", err)
	}
	if _, err := svc.AddJob("job", "", func() {}); !errors.Is(err, ErrEmptyCronExpr) {
		t.Fatalf("expected ErrEmptyCronExpr, got %v", err)
	}
	if _, err := svc.AddJob("job", "not a cron", func() {}); err == nil {
		t.Fatalf("expected invalid cron expression to be rejected")
	}

	job, err := svc.RegisterSessionSweep("*/10 * * * *", &fakeSweeper{})
	if err != nil {
		t.Fatalf("register sweep: %v", err)
	}
	if job.Name() != sessionSweepJobName {
		t.Fatalf("unexpected job name: %s", job.Name())
	}
}

func TestNilServiceIsNotInitialized(t *testing.T) {
	var svc *Service
	if err := svc.Stop(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if _, err := svc.AddJob("job", "* * * * *", func() {}); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}
