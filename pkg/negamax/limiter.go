package negamax

import (
	"context"
	"time"
)

type StopReason int

const (
	StopNone      StopReason = iota
	StopInterrupt            = 1 // Stopped by user, by calling .SetStop(true) or context cancellation
	StopMovetime             = 2 // Time limit reached
	StopNodes                = 4 // Node limit reached
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopNodes, "Nodes"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

type LimiterLike interface {
	SetContext(ctx context.Context)
	// Set the limits
	SetLimits(*Limits)
	// Get the limits
	Limits() *Limits
	// Time since the last 'Reset' call
	Elapsed() time.Duration
	// Set the stop signal, the search unwinds when it's true
	SetStop(bool)
	// Get the stop signal
	Stop() bool
	// Reset the limiter's flags, called on search setup
	Reset()
	// Whether the search may continue, called on every node
	Ok(nodes uint32) bool
	// Get the reason why the search was stopped, valid after search ends
	StopReason() StopReason
}

type Limiter struct {
	limits *Limits
	timer  *timer
	stop   bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		timer:  newTimer(),
		ctx:    context.Background(),
	}
}

func (l *Limiter) Reset() {
	l.timer.Movetime(l.limits.Movetime)
	l.timer.Reset()
	l.stop = false
	l.reason = StopNone
}

func (l *Limiter) StopReason() StopReason {
	return l.reason
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

func (l *Limiter) SetStop(v bool) {
	l.stop = v
}

func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop = true
	default:
	}
	return l.stop
}

func (l *Limiter) SetLimits(limits *Limits) {
	if limits == nil {
		limits = DefaultLimits()
	}
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

func (l *Limiter) Elapsed() time.Duration {
	return l.timer.Elapsed()
}

// Evaluate the stop flags, remembering the first reason that fired
func (l *Limiter) Ok(nodes uint32) bool {
	reason := StopNone
	if l.Stop() {
		reason |= StopInterrupt
	}

	if !l.limits.Infinite {
		if l.timer.IsEnd() {
			reason |= StopMovetime
		}
		if nodes > l.limits.Nodes {
			reason |= StopNodes
		}
	}

	if reason != StopNone && l.reason == StopNone {
		l.reason = reason
	}
	return reason == StopNone
}
