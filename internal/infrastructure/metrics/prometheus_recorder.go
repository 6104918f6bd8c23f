// Package metrics records image generation, design and ticket metrics with
// Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/Iris-Sagastume/construct-ia/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "construct_ia"

// PrometheusRecorder implements interfaces.IMetricsRecorder.
type PrometheusRecorder struct {
	imageRequests    *prometheus.CounterVec
	imageDuration    *prometheus.HistogramVec
	designGeneration *prometheus.HistogramVec
	ticketsIssued    *prometheus.CounterVec
}

var _ interfaces.IMetricsRecorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder registers the metrics on the default registerer.
func NewPrometheusRecorder() *PrometheusRecorder {
	return NewPrometheusRecorderWith(prometheus.DefaultRegisterer)
}

// NewPrometheusRecorderWith registers the metrics on reg. Registering twice on
// the same registerer panics.
func NewPrometheusRecorderWith(reg prometheus.Registerer) *PrometheusRecorder {
	factory := promauto.With(reg)
	return &PrometheusRecorder{
		imageRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "image_requests_total",
				Help:      "Image generation requests by image kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		imageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "image_request_duration_seconds",
				Help:      "Duration of image generation requests in seconds",
				Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
			},
			[]string{"kind"},
		),
		designGeneration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "design_generation_duration_seconds",
				Help:      "Duration of a full house design generation (estimate, images and persistence)",
				Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
			},
			[]string{"success"},
		),
		ticketsIssued: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tickets_issued_total",
				Help:      "Pre-quote tickets issued by the assistant, by whether the pre-quote was persisted",
			},
			[]string{"persisted"},
		),
	}
}

func (p *PrometheusRecorder) ObserveImageRequest(kind, outcome string, duration time.Duration) {
	p.imageRequests.WithLabelValues(kind, outcome).Inc()
	p.imageDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func (p *PrometheusRecorder) ObserveDesignGeneration(success bool, duration time.Duration) {
	p.designGeneration.WithLabelValues(strconv.FormatBool(success)).Observe(duration.Seconds())
}

// IncTicketIssued counts a ticket. persisted=false means the summary was shown
// but the pre-quote write failed.
func (p *PrometheusRecorder) IncTicketIssued(persisted bool) {
	p.ticketsIssued.WithLabelValues(strconv.FormatBool(persisted)).Inc()
}
