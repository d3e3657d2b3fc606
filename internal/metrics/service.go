package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ReportRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoutline_report_runs_total",
			Help: "The total number of scouting report requests received.",
		}),
		ReportsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoutline_reports_generated_total",
			Help: "The total number of scouting reports successfully generated.",
		}),
		RecordsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoutline_records_skipped_total",
			Help: "The total number of malformed match records dropped during normalization.",
		}),
		NarrativeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoutline_narrative_failures_total",
			Help: "The total number of narrative generation calls that failed.",
		}),
		ReportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scoutline_report_build_duration_seconds",
			Help:    "The duration of individual report builds, fetch included.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoutline_notifications_sent_total",
			Help: "The total number of report notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoutline_notifications_failed_total",
			Help: "The total number of report notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scoutline_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.ReportRuns,
		s.ReportsGenerated,
		s.RecordsSkipped,
		s.NarrativeFailures,
		s.ReportDuration,
		s.NotifSent,
		s.NotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncReportRuns() {
	s.ReportRuns.Inc()
}

func (s *Service) IncReportsGenerated() {
	s.ReportsGenerated.Inc()
}

func (s *Service) AddRecordsSkipped(count int) {
	s.RecordsSkipped.Add(float64(count))
}

func (s *Service) IncNarrativeFailures() {
	s.NarrativeFailures.Inc()
}

func (s *Service) ObserveReportDuration(seconds float64) {
	s.ReportDuration.Observe(seconds)
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
