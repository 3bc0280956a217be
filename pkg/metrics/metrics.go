package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	insightService = "insight_api"

	// Job metrics
	jobsCreatedTotal   = "analysis_jobs_created_total"
	jobsCompletedTotal = "analysis_jobs_completed_total"
	pipelinesInflight  = "analysis_pipelines_inflight"

	// Labels
	jobStatusLabel = "status"
)

var jobsCompletedTotalLabels = []string{
	jobStatusLabel,
}

/**
* Metrics definition
**/
var jobsCreatedTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: insightService,
		Name:      jobsCreatedTotal,
		Help:      "number of analysis jobs accepted",
	},
)

var jobsCompletedTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: insightService,
		Name:      jobsCompletedTotal,
		Help:      "number of analysis jobs finished, partitioned by terminal status",
	},
	jobsCompletedTotalLabels,
)

var pipelinesInflightMetric = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Subsystem: insightService,
		Name:      pipelinesInflight,
		Help:      "number of analysis pipelines currently running",
	},
)

func IncreaseJobsCreatedTotalMetric() {
	jobsCreatedTotalMetric.Inc()
}

func IncreaseJobsCompletedTotalMetric(status string) {
	labels := prometheus.Labels{
		jobStatusLabel: status,
	}
	jobsCompletedTotalMetric.With(labels).Inc()
}

func IncreasePipelinesInflightMetric() {
	pipelinesInflightMetric.Inc()
}

func DecreasePipelinesInflightMetric() {
	pipelinesInflightMetric.Dec()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(jobsCreatedTotalMetric)
	prometheus.MustRegister(jobsCompletedTotalMetric)
	prometheus.MustRegister(pipelinesInflightMetric)
}
