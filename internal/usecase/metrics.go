package usecase

import "time"

type nopMetrics struct{}

func (nopMetrics) ObserveImageRequest(string, string, time.Duration) {}
func (nopMetrics) ObserveDesignGeneration(bool, time.Duration)       {}
func (nopMetrics) IncTicketIssued(bool)                              {}
