package engine

import (
	"reflect"
	"testing"
	"time"
)

func TestScheduler_RunsAtInterval(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	s := NewScheduler(clock)

	var fired []time.Time
	id := s.Every("rate", time.Second, func(now time.Time) { fired = append(fired, now) })

	if n := s.RunDue(at(999)); n != 0 {
		t.Errorf("Expected no runs before deadline, got %d", n)
	}
	if n := s.RunDue(at(1000)); n != 1 {
		t.Errorf("Expected one run at deadline, got %d", n)
	}
	if n := s.RunDue(at(1500)); n != 0 {
		t.Errorf("Expected no run mid-interval, got %d", n)
	}
	s.RunDue(at(2000))

	if !reflect.DeepEqual(fired, []time.Time{at(1000), at(2000)}) {
		t.Errorf("Unexpected fire times %v", fired)
	}
	if s.Runs(id) != 2 {
		t.Errorf("Expected 2 runs, got %d", s.Runs(id))
	}
}

func TestScheduler_IndependentTasks(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	s := NewScheduler(clock)

	rate, save := 0, 0
	s.Every("rate", time.Second, func(time.Time) { rate++ })
	s.Every("autosave", 5*time.Second, func(time.Time) { save++ })

	for ms := 0; ms <= 10000; ms += 100 {
		s.RunDue(at(ms))
	}

	if rate != 10 {
		t.Errorf("Expected 10 rate runs, got %d", rate)
	}
	if save != 2 {
		t.Errorf("Expected 2 autosave runs, got %d", save)
	}
}

func TestScheduler_SameInstantRegistrationOrder(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	s := NewScheduler(clock)

	var order []string
	s.Every("first", time.Second, func(time.Time) { order = append(order, "first") })
	s.Every("second", time.Second, func(time.Time) { order = append(order, "second") })
	s.Every("third", time.Second, func(time.Time) { order = append(order, "third") })

	s.RunDue(at(1000))
	if !reflect.DeepEqual(order, []string{"first", "second", "third"}) {
		t.Errorf("Expected registration order, got %v", order)
	}
}

func TestScheduler_FallsBehindNoReplay(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	s := NewScheduler(clock)

	runs := 0
	s.Every("rate", time.Second, func(time.Time) { runs++ })

	// Loop stalled for 10 intervals
	if n := s.RunDue(at(10500)); n != 1 {
		t.Errorf("Expected a single catch-up run, got %d", n)
	}
	deadline, ok := s.NextDeadline()
	if !ok || !deadline.Equal(at(11500)) {
		t.Errorf("Expected deadline rebased to 11500ms, got %v", deadline.Sub(epoch))
	}
	if runs != 1 {
		t.Errorf("Expected 1 run, got %d", runs)
	}
}

func TestScheduler_DriftCorrection(t *testing.T) {
	tests := []struct {
		name   string
		runAt  int
		wantAt int
	}{
		{"on time", 1000, 2000},
		{"late under one interval keeps cadence", 1500, 2000},
		{"late exactly one interval rebases", 2000, 3000},
		{"late over one interval rebases", 2200, 3200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler(NewMockTimeProvider(epoch))
			s.Every("rate", time.Second, func(time.Time) {})

			if n := s.RunDue(at(tt.runAt)); n != 1 {
				t.Fatalf("Expected 1 run, got %d", n)
			}
			deadline, _ := s.NextDeadline()
			if !deadline.Equal(at(tt.wantAt)) {
				t.Errorf("Expected next deadline %dms, got %v", tt.wantAt, deadline.Sub(epoch))
			}
		})
	}
}

func TestScheduler_CancelAndStop(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	s := NewScheduler(clock)

	a, b := 0, 0
	idA := s.Every("a", time.Second, func(time.Time) { a++ })
	s.Every("b", time.Second, func(time.Time) { b++ })

	if !s.Cancel(idA) {
		t.Error("Expected cancel to succeed")
	}
	if s.Cancel(idA) {
		t.Error("Expected second cancel to report unknown task")
	}

	s.RunDue(at(1000))
	if a != 0 || b != 1 {
		t.Errorf("Expected only b to run, got a=%d b=%d", a, b)
	}

	s.Stop()
	if s.Len() != 0 {
		t.Errorf("Expected no tasks after Stop, got %d", s.Len())
	}
	if _, ok := s.NextDeadline(); ok {
		t.Error("Expected no deadline after Stop")
	}
	s.RunDue(at(5000))
	if b != 1 {
		t.Errorf("Expected no runs after Stop, got b=%d", b)
	}
}

func TestScheduler_CancelDuringRun(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	s := NewScheduler(clock)

	var idB TaskID
	ranB := false
	s.Every("a", time.Second, func(time.Time) { s.Cancel(idB) })
	idB = s.Every("b", time.Second, func(time.Time) { ranB = true })

	s.RunDue(at(1000))
	if ranB {
		t.Error("Expected task cancelled earlier in the pass not to run")
	}
}

func TestScheduler_NextDeadline(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	s := NewScheduler(clock)

	if _, ok := s.NextDeadline(); ok {
		t.Error("Expected idle scheduler to have no deadline")
	}
	s.Every("slow", 5*time.Second, func(time.Time) {})
	s.Every("fast", time.Second, func(time.Time) {})

	deadline, ok := s.NextDeadline()
	if !ok || !deadline.Equal(at(1000)) {
		t.Errorf("Expected earliest deadline at 1000ms, got %v", deadline.Sub(epoch))
	}
}
