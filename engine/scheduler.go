package engine

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// TaskID identifies a recurring task
type TaskID uint64

// task is one recurring job with its drift-corrected deadline
type task struct {
	id       TaskID
	name     string
	interval time.Duration
	deadline time.Time
	fn       func(now time.Time)
	runs     uint64
}

// Scheduler owns the process-lifetime recurring tasks (rate recompute, autosave)
//
// Tasks run synchronously on the goroutine calling RunDue, normally the event loop,
// so they never interleave with input handling
type Scheduler struct {
	clock  TimeProvider
	tasks  map[TaskID]*task
	nextID TaskID
}

// NewScheduler creates an empty scheduler on clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock: clock,
		tasks: make(map[TaskID]*task),
	}
}

// Every registers fn to run each interval, first run one interval from now
func (s *Scheduler) Every(name string, interval time.Duration, fn func(now time.Time)) TaskID {
	if interval <= 0 {
		panic("scheduler: non-positive interval for task " + name)
	}
	s.nextID++
	id := s.nextID
	s.tasks[id] = &task{
		id:       id,
		name:     name,
		interval: interval,
		deadline: s.clock.Now().Add(interval),
		fn:       fn,
	}
	logrus.WithFields(logrus.Fields{"task": name, "interval": interval}).Debug("scheduler task registered")
	return id
}

// Cancel removes a task, false if unknown
func (s *Scheduler) Cancel(id TaskID) bool {
	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	logrus.WithField("task", t.name).Debug("scheduler task cancelled")
	return true
}

// Stop cancels every task
func (s *Scheduler) Stop() {
	for id := range s.tasks {
		s.Cancel(id)
	}
}

// Len returns the number of live tasks
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Runs returns how many times a task has executed
func (s *Scheduler) Runs(id TaskID) uint64 {
	if t, ok := s.tasks[id]; ok {
		return t.runs
	}
	return 0
}

// NextDeadline returns the earliest pending deadline, false when idle
func (s *Scheduler) NextDeadline() (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, t := range s.tasks {
		if !found || t.deadline.Before(earliest) {
			earliest = t.deadline
			found = true
		}
	}
	return earliest, found
}

// RunDue executes every task whose deadline is at or before now, returns runs performed
// A task that missed several deadlines runs once, missed runs are not replayed
func (s *Scheduler) RunDue(now time.Time) int {
	due := make([]*task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !now.Before(t.deadline) {
			due = append(due, t)
		}
	}
	// Registration order for same-instant deadlines
	sort.Slice(due, func(i, j int) bool { return due[i].id < due[j].id })

	runs := 0
	for _, t := range due {
		// Cancelled by an earlier task in this pass
		if _, live := s.tasks[t.id]; !live {
			continue
		}

		t.fn(now)
		t.runs++
		runs++

		// Fixed cadence, rebased on now when the loop fell behind
		t.deadline = t.deadline.Add(t.interval)
		if !now.Before(t.deadline) {
			t.deadline = now.Add(t.interval)
		}
	}
	return runs
}
