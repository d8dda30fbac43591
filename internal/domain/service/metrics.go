package service

// MetricsRecorder receives business counters from the use cases.
type MetricsRecorder interface {
	// RecordAuthEvent counts a login, refresh, logout or register attempt by outcome.
	RecordAuthEvent(operation, outcome string)

	// RecordToggle counts a settled toggle by relation kind and result.
	RecordToggle(kind, result string)
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) RecordAuthEvent(string, string) {}
func (NoopMetrics) RecordToggle(string, string)    {}
