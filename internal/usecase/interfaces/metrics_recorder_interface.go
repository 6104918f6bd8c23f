package interfaces

import "time"

// IMetricsRecorder records operational metrics (Prometheus in production).
type IMetricsRecorder interface {
	ObserveImageRequest(kind, outcome string, duration time.Duration)
	ObserveDesignGeneration(success bool, duration time.Duration)
	IncTicketIssued(persisted bool)
}
