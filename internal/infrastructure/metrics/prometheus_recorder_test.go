package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	out := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		out[f.GetName()] = f
	}
	return out
}

func labelValue(m *dto.Metric, name string) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}

func TestPrometheusRecorder(t *testing.T) {
	t.Run("image requests", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		r := NewPrometheusRecorderWith(reg)

		r.ObserveImageRequest("blueprint", "success", 2*time.Second)
		r.ObserveImageRequest("blueprint", "success", time.Second)
		r.ObserveImageRequest("render", "provider_error", time.Second)

		families := gather(t, reg)
		counter, ok := families["construct_ia_image_requests_total"]
		if !ok {
			t.Fatalf("image requests counter not registered")
		}
		got := map[string]float64{}
		for _, m := range counter.GetMetric() {
			got[labelValue(m, "kind")+"/"+labelValue(m, "outcome")] = m.GetCounter().GetValue()
		}
		if got["blueprint/success"] != 2 || got["render/provider_error"] != 1 {
			t.Fatalf("unexpected counters %v", got)
		}

		hist := families["construct_ia_image_request_duration_seconds"]
		if hist == nil {
			t.Fatalf("image duration histogram not registered")
		}
		for _, m := range hist.GetMetric() {
			if labelValue(m, "kind") == "blueprint" && m.GetHistogram().GetSampleCount() != 2 {
				t.Fatalf("expected 2 blueprint samples, got %d", m.GetHistogram().GetSampleCount())
			}
		}
	})

	t.Run("design generation and tickets", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		r := NewPrometheusRecorderWith(reg)

		r.ObserveDesignGeneration(true, 3*time.Second)
		r.ObserveDesignGeneration(false, time.Second)
		r.IncTicketIssued(true)
		r.IncTicketIssued(false)
		r.IncTicketIssued(false)

		families := gather(t, reg)
		design := families["construct_ia_design_generation_duration_seconds"]
		if design == nil || len(design.GetMetric()) != 2 {
			t.Fatalf("expected design histogram with success=true and success=false")
		}

		tickets := families["construct_ia_tickets_issued_total"]
		if tickets == nil {
			t.Fatalf("tickets counter not registered")
		}
		got := map[string]float64{}
		for _, m := range tickets.GetMetric() {
			got[labelValue(m, "persisted")] = m.GetCounter().GetValue()
		}
		if got["true"] != 1 || got["false"] != 2 {
			t.Fatalf("unexpected ticket counters %v", got)
		}
	})

	t.Run("double registration panics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		NewPrometheusRecorderWith(reg)
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic on duplicate registration")
			}
		}()
		NewPrometheusRecorderWith(reg)
	})
}
