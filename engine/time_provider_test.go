package engine

import (
	"testing"
	"time"
)

func TestRealTimeProvider(t *testing.T) {
	provider := NewRealTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(epoch)

	if now := mock.Now(); !now.Equal(epoch) {
		t.Errorf("Expected initial time to be %v, got %v", epoch, now)
	}

	if got := mock.Advance(1500 * time.Millisecond); !got.Equal(at(1500)) {
		t.Errorf("Expected Advance to return %v, got %v", at(1500), got)
	}

	mock.SetTime(at(200))
	if now := mock.Now(); !now.Equal(at(200)) {
		t.Errorf("Expected time to be %v after SetTime, got %v", at(200), now)
	}
}
