// Package status keeps session metrics on a private Prometheus registry
// The game has no network listener; the registry is written as a textfile on shutdown
package status

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "pump"

// Save results for SavesTotal
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

// Registry is the central metrics facade
// Handlers write collectors directly, the registry only gathers
type Registry struct {
	reg *prometheus.Registry

	Activations   *prometheus.CounterVec // by input source
	BonusClicks   prometheus.Counter
	Milestones    prometheus.Counter
	ClicksPerSec  prometheus.Gauge
	Count         prometheus.Gauge
	SavesTotal    *prometheus.CounterVec // by result
	DroppedEvents prometheus.Gauge
}

// NewRegistry creates a registry with game collectors and optional runtime collectors
func NewRegistry(runtime bool) *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		Activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activations_total",
			Help:      "Logical button activations by input source",
		}, []string{"source"}),
		BonusClicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bonus_clicks_total",
			Help:      "Clicks added by bonuses",
		}),
		Milestones: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "milestones_achieved_total",
			Help:      "Achievement notifications shown",
		}),
		ClicksPerSec: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "clicks_per_second",
			Help:      "Activations inside the trailing rate window",
		}),
		Count: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "activation_count",
			Help:      "Current total click count",
		}),
		SavesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "saves_total",
			Help:      "Snapshot writes by result",
		}, []string{"result"}),
		DroppedEvents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dropped_events",
			Help:      "Events lost to event queue overflow",
		}),
	}

	r.reg.MustRegister(
		r.Activations,
		r.BonusClicks,
		r.Milestones,
		r.ClicksPerSec,
		r.Count,
		r.SavesTotal,
		r.DroppedEvents,
	)
	if runtime {
		r.reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return r
}

// Gatherer exposes the underlying registry
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes the text exposition format to path
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
