package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess     = "success"
	OutcomeDemo        = "demo"
	OutcomeBadRequest  = "bad_request"
	OutcomeInvalidJSON = "invalid_json"
	OutcomeError       = "error"
)

var (
	once sync.Once

	// AnalyzeRequestsTotal counts /analyze requests by outcome.
	AnalyzeRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodbridge",
		Subsystem: "analyzer",
		Name:      "requests_total",
		Help:      "Total number of image analysis requests, labeled by outcome.",
	}, []string{"outcome"})

	// ProviderDurationSeconds is the wall time of calls to the AI provider.
	ProviderDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "foodbridge",
		Subsystem: "analyzer",
		Name:      "provider_duration_seconds",
		Help:      "Duration of AI provider calls, labeled by operation and result.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 60},
	}, []string{"operation", "result"})

	// ModelReady is 1 when a generation model was selected at startup.
	ModelReady = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "foodbridge",
		Subsystem: "analyzer",
		Name:      "model_ready",
		Help:      "Whether a Gemini model was selected at startup.",
	})
)

// Register adds the collectors to the default registry. Safe to call more than once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			AnalyzeRequestsTotal,
			ProviderDurationSeconds,
			ModelReady,
		)
	})
}

// Result maps an error to the "result" label value.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
