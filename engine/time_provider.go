package engine

import "time"

// TimeProvider supplies the current time to rate windowing and scheduling
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the system clock, including the monotonic reading
type RealTimeProvider struct{}

// NewRealTimeProvider creates a system clock provider
func NewRealTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current wall time with monotonic component
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
