package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds the registered Prometheus collectors.
type Service struct {
	ScoresRecorded      prometheus.Counter
	CompetitionsCreated prometheus.Counter
	CompetitionsSettled prometheus.Counter
	StarsAwarded        prometheus.Counter
	NotifSent           prometheus.Counter
	NotifFailed         prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}
