package negamax

import (
	"context"
	"testing"
	"time"
)

func TestLimiterSingleLimits(t *testing.T) {
	limiter := LimiterLike(NewLimiter())

	if !limiter.Ok(1000000) {
		t.Error("Default limiter should search infinitely")
	}

	limiter.SetLimits(DefaultLimits().SetNodes(100))
	limiter.Reset()
	if ok := limiter.Ok(101); ok {
		t.Errorf(">Nodes=%d: ok=%v, want=%v", 101, ok, !ok)
	}
	if limiter.StopReason() != StopNodes {
		t.Errorf("StopReason=%s, want %s", limiter.StopReason(), StopReason(StopNodes))
	}

	limiter.Reset()
	if ok := limiter.Ok(99); !ok {
		t.Errorf("<Nodes=%d: ok=%v, want=%v", 99, ok, !ok)
	}

	limiter.SetLimits(DefaultLimits().SetMovetime(20))
	limiter.Reset()
	time.Sleep(time.Millisecond * 25)

	if ok := limiter.Ok(1); ok {
		t.Errorf(">Movetime: ok=%v, want=%v", ok, !ok)
	}

	limiter.Reset()
	if ok := limiter.Ok(1); !ok {
		t.Errorf("<Movetime: ok=%v, want=%v", ok, !ok)
	}
}

func TestLimiterZeroMovetime(t *testing.T) {
	limiter := NewLimiter()
	limiter.SetLimits(DefaultLimits().SetMovetime(0))
	limiter.Reset()

	if limiter.Ok(0) || limiter.StopReason() != StopMovetime {
		t.Errorf("zero movetime should stop at once, reason=%s", limiter.StopReason())
	}

	limiter.SetLimits(DefaultLimits().SetMovetime(-1).SetNodes(10))
	limiter.Reset()
	if !limiter.Ok(1) {
		t.Errorf("negative movetime should disable the timer, reason=%s", limiter.StopReason())
	}
}

func TestLimiterStop(t *testing.T) {
	limiter := NewLimiter()
	limiter.SetStop(true)

	if limiter.Ok(1) || limiter.StopReason() != StopInterrupt {
		t.Errorf("stop signal ignored, reason=%s", limiter.StopReason())
	}

	ctx, cancel := context.WithCancel(context.Background())
	limiter.SetContext(ctx)
	limiter.Reset()
	if !limiter.Ok(1) {
		t.Error("Reset should clear the stop signal")
	}

	cancel()
	if limiter.Ok(1) || limiter.StopReason() != StopInterrupt {
		t.Errorf("context cancellation ignored, reason=%s", limiter.StopReason())
	}
}

func TestStopReasonString(t *testing.T) {
	tests := []struct {
		reason StopReason
		want   string
	}{
		{StopNone, "None"},
		{StopInterrupt, "Interrupt"},
		{StopMovetime | StopNodes, "Movetime|Nodes"},
	}

	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("StopReason(%d).String()=%q, want %q", int(tt.reason), got, tt.want)
		}
	}
}

func TestLimitsString(t *testing.T) {
	want := `{"Nodes":10,"Movetime":-1,"Infinite":false}`
	if got := DefaultLimits().SetNodes(10).String(); got != want {
		t.Errorf("String()=%s, want %s", got, want)
	}
}
