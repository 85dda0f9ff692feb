package status

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/lixenwraith/pump-clicker/events"
)

type fakeQueue uint64

func (q fakeQueue) Dropped() uint64 { return uint64(q) }

func dispatch(h *Handler, evs ...events.GameEvent) {
	q := events.NewEventQueue()
	r := events.NewRouter(q)
	r.Register(h)
	for _, ev := range evs {
		q.Push(ev)
	}
	r.DispatchAll()
}

func TestHandler_Counters(t *testing.T) {
	reg := NewRegistry(false)
	h := NewHandler(reg)

	dispatch(h,
		events.GameEvent{Type: events.EventActivation, Payload: &events.ActivationPayload{Source: events.SourcePointer, Count: 1}},
		events.GameEvent{Type: events.EventActivation, Payload: &events.ActivationPayload{Source: events.SourceKeyboard, Count: 2}},
		events.GameEvent{Type: events.EventActivation, Payload: &events.ActivationPayload{Source: events.SourceKeyboard, Count: 3}},
		events.GameEvent{Type: events.EventBonus, Payload: &events.BonusPayload{Amount: 100, Count: 103}},
		events.GameEvent{Type: events.EventCountChanged, Payload: &events.CountPayload{Count: 103}},
		events.GameEvent{Type: events.EventRateChanged, Payload: &events.RatePayload{Rate: 3}},
		events.GameEvent{Type: events.EventMilestoneAchieved, Payload: &events.MilestonePayload{Threshold: 100}},
		events.GameEvent{Type: events.EventStateSaved, Payload: &events.SnapshotPayload{}},
		events.GameEvent{Type: events.EventSaveFailed, Payload: &events.SaveFailedPayload{Err: errors.New("disk full")}},
	)

	if v := testutil.ToFloat64(reg.Activations.WithLabelValues("keyboard")); v != 2 {
		t.Errorf("Expected 2 keyboard activations, got %v", v)
	}
	if v := testutil.ToFloat64(reg.Activations.WithLabelValues("pointer")); v != 1 {
		t.Errorf("Expected 1 pointer activation, got %v", v)
	}
	if v := testutil.ToFloat64(reg.BonusClicks); v != 100 {
		t.Errorf("Expected 100 bonus clicks, got %v", v)
	}
	if v := testutil.ToFloat64(reg.Count); v != 103 {
		t.Errorf("Expected count gauge 103, got %v", v)
	}
	if v := testutil.ToFloat64(reg.ClicksPerSec); v != 3 {
		t.Errorf("Expected rate gauge 3, got %v", v)
	}
	if v := testutil.ToFloat64(reg.Milestones); v != 1 {
		t.Errorf("Expected 1 milestone, got %v", v)
	}
	if v := testutil.ToFloat64(reg.SavesTotal.WithLabelValues(ResultOK)); v != 1 {
		t.Errorf("Expected 1 successful save, got %v", v)
	}
	if v := testutil.ToFloat64(reg.SavesTotal.WithLabelValues(ResultFailed)); v != 1 {
		t.Errorf("Expected 1 failed save, got %v", v)
	}
}

func TestHandler_ObserveQueue(t *testing.T) {
	reg := NewRegistry(false)
	NewHandler(reg).ObserveQueue(fakeQueue(4))

	if v := testutil.ToFloat64(reg.DroppedEvents); v != 4 {
		t.Errorf("Expected 4 dropped events, got %v", v)
	}
}

func TestWriteTextfile(t *testing.T) {
	reg := NewRegistry(false)
	reg.Count.Set(42)

	path := filepath.Join(t.TempDir(), "pump.prom")
	if err := reg.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read metrics file: %v", err)
	}
	if !strings.Contains(string(data), "pump_activation_count 42") {
		t.Errorf("Expected count gauge in textfile, got:\n%s", data)
	}
}

func TestWriteTextfile_BadPath(t *testing.T) {
	reg := NewRegistry(false)
	path := filepath.Join(t.TempDir(), "missing", "pump.prom")
	if err := reg.WriteTextfile(path); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestRegistry_RuntimeCollectors(t *testing.T) {
	reg := NewRegistry(true)
	families, err := reg.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	found := false
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "go_") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected Go runtime metrics when runtime collectors are enabled")
	}
}
