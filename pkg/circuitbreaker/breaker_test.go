package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBreakerOpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker("test", Config{
		FailureThreshold: 2,
		Timeout:          time.Minute,
	})

	boom := errors.New("boom")
	for i := 0; i < 2; i++ {
		err := cb.Execute(context.Background(), func() error { return boom })
		if !errors.Is(err, boom) {
			t.Fatalf("expected operation error, got %v", err)
		}
	}

	if cb.State() != StateOpen {
		t.Fatalf("expected open state, got %s", cb.State())
	}

	called := false
	err := cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if called {
		t.Fatalf("open circuit must not invoke the operation")
	}
}

func TestBreakerRecoversThroughHalfOpen(t *testing.T) {
	cb := NewCircuitBreaker("test", Config{
		MaxRequests:      1,
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          10 * time.Millisecond,
	})

	cb.Execute(context.Background(), func() error { return errors.New("boom") })
	if cb.State() != StateOpen {
		t.Fatalf("expected open state after failure")
	}

	time.Sleep(20 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error { return nil })
	if err != nil {
		t.Fatalf("half-open probe failed: %v", err)
	}
	if cb.State() != StateClosed {
		t.Fatalf("expected closed state after successful probe, got %s", cb.State())
	}
}
