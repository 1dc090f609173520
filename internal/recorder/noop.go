package recorder

import "TrendSentry/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordScan(_ string, _ []model.Analysis) error { return nil }
func (n *NoopRecorder) RecordAlerts(_ string, _ []model.Alert) error  { return nil }
func (n *NoopRecorder) Close() error                                  { return nil }
