// Package metrics counts emitted log lines per level with Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/mordilloSan/go-labellog/logger"
)

// Namespace prefixes every metric name.
const Namespace = "labellog"

// Counter counts permitted emissions by level and label.
type Counter struct {
	lines *prometheus.CounterVec
}

// New returns a Counter registered on reg. A nil reg skips registration.
func New(reg prometheus.Registerer) (*Counter, error) {
	c := &Counter{
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "log",
			Name:      "lines_total",
			Help:      "Number of log lines emitted, by level and label.",
		}, []string{"level", "label"}),
	}
	if reg != nil {
		if err := reg.Register(c.lines); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Hook returns a logger.Hook that counts each permitted emission and leaves
// it unchanged. Filtered calls never reach hooks, so they are not counted.
func (c *Counter) Hook() logger.Hook {
	return func(e logger.Emission) logger.HookResult {
		c.lines.WithLabelValues(e.Level.String(), e.Label).Inc()
		return nil
	}
}

// Count returns the number of lines counted for level and label. Reading
// never creates a series; an unseen pair counts zero.
func (c *Counter) Count(level logger.Level, label string) float64 {
	ch := make(chan prometheus.Metric)
	go func() {
		c.lines.Collect(ch)
		close(ch)
	}()

	var total float64
	for m := range ch {
		var pb dto.Metric
		if err := m.Write(&pb); err != nil {
			continue
		}
		if hasLabels(&pb, level.String(), label) {
			total += pb.GetCounter().GetValue()
		}
	}
	return total
}

func hasLabels(m *dto.Metric, level, label string) bool {
	var matched int
	for _, p := range m.GetLabel() {
		switch {
		case p.GetName() == "level" && p.GetValue() == level,
			p.GetName() == "label" && p.GetValue() == label:
			matched++
		}
	}
	return matched == 2
}

// Collector exposes the underlying collector for custom registration.
func (c *Counter) Collector() prometheus.Collector {
	return c.lines
}
