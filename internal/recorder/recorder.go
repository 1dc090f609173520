package recorder

import "TrendSentry/internal/model"

// Recorder persists scan history for later inspection. A scan batch groups
// every analysis produced by one scheduler run under a shared batch ID.
type Recorder interface {
	RecordScan(batchID string, analyses []model.Analysis) error
	RecordAlerts(batchID string, alerts []model.Alert) error
	Close() error
}
