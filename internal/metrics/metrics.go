// Package metrics counts colorkit operations and writes them as a
// Prometheus textfile for node_exporter's textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"colorkit/internal/contrast"
	"colorkit/internal/palette"
)

// Metrics holds the collectors for one process.
type Metrics struct {
	registry *prometheus.Registry

	// ContrastChecks counts contrast checks by WCAG level and outcome
	ContrastChecks *prometheus.CounterVec

	// ContrastRatio tracks the distribution of computed ratios
	ContrastRatio prometheus.Histogram

	// PalettesGenerated counts palettes by type
	PalettesGenerated *prometheus.CounterVec

	// InvalidInput counts rejected input by command
	InvalidInput *prometheus.CounterVec

	// ClipboardWrites counts clipboard copies by result
	ClipboardWrites *prometheus.CounterVec
}

// New registers a fresh set of collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ContrastChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "colorkit_contrast_checks_total",
			Help: "Total contrast checks by WCAG level and result",
		}, []string{"level", "result"}),
		ContrastRatio: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "colorkit_contrast_ratio",
			Help:    "Computed contrast ratios",
			Buckets: []float64{1.5, contrast.MinAALarge, contrast.MinAA, contrast.MinAAA, 10, 15, 21},
		}),
		PalettesGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "colorkit_palettes_generated_total",
			Help: "Total palettes generated by type",
		}, []string{"type"}),
		InvalidInput: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "colorkit_invalid_input_total",
			Help: "Total rejected inputs by command",
		}, []string{"command"}),
		ClipboardWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "colorkit_clipboard_writes_total",
			Help: "Total clipboard writes by result",
		}, []string{"result"}),
	}
}

// ObserveContrast records one contrast check.
func (m *Metrics) ObserveContrast(res contrast.Result) {
	m.ContrastRatio.Observe(res.Ratio)
	for _, lvl := range res.Levels() {
		m.ContrastChecks.WithLabelValues(lvl.Label, outcome(lvl.Pass)).Inc()
	}
}

// ObservePalette records one generated palette.
func (m *Metrics) ObservePalette(t palette.Type) {
	m.PalettesGenerated.WithLabelValues(t.String()).Inc()
}

// ObserveInvalid records rejected input for command.
func (m *Metrics) ObserveInvalid(command string) {
	m.InvalidInput.WithLabelValues(command).Inc()
}

// ObserveClipboard records a clipboard write attempt.
func (m *Metrics) ObserveClipboard(err error) {
	m.ClipboardWrites.WithLabelValues(outcome(err == nil)).Inc()
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile atomically writes all metrics to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Gatherer())
}

func outcome(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
