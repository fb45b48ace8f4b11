package worker

import (
	"context"
	"testing"
)

func TestLimiter_DisabledForZeroRate(t *testing.T) {
	if l := NewLimiter(0, 5); l != nil {
		t.Error("expected nil limiter for zero rate")
	}
	if l := NewLimiter(-1, 5); l != nil {
		t.Error("expected nil limiter for negative rate")
	}
}

func TestLimiter_NilIsUnthrottled(t *testing.T) {
	var l *Limiter

	if !l.Allow() {
		t.Error("nil limiter should always allow")
	}
	if err := l.Wait(context.Background()); err != nil {
		t.Errorf("nil limiter wait failed: %v", err)
	}
}

func TestLimiter_Burst(t *testing.T) {
	l := NewLimiter(1, 1) // 1 scan/s, burst 1

	if !l.Allow() {
		t.Error("first scan should be allowed")
	}
	if l.Allow() {
		t.Error("second immediate scan should be throttled")
	}
}

func TestLimiter_WaitCancelled(t *testing.T) {
	l := NewLimiter(0.001, 1)
	l.Allow() // drain the burst

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}
}
