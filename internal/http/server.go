package http

import (
	"net/http"

	"github.com/mbkold/scoutline/internal/analytics"
	"github.com/mbkold/scoutline/internal/config"
	"github.com/mbkold/scoutline/internal/metrics"
	"github.com/mbkold/scoutline/internal/narrative"
	"github.com/mbkold/scoutline/internal/notifier"
	"github.com/mbkold/scoutline/internal/pubsub"
	"github.com/mbkold/scoutline/internal/reports"
)

func NewServer(store reports.ReportStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, analyzer *analytics.Analyzer, generator narrative.Generator, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Analyzer:       analyzer,
		Narrative:      generator,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("POST /reports/generate", Chain(s.GenerateReportHandler(), paramsMiddleware))
	s.Router.Handle("POST /reports/counter-strategy", Chain(s.CounterStrategyHandler(), paramsMiddleware))
	s.Router.Handle("GET /reports", Chain(s.ListReportsHandler(), paramsMiddleware))
	s.Router.Handle("GET /reports/{id}", Chain(s.GetReportHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /reports/{id}", Chain(s.DeleteReportHandler(), paramsMiddleware))
	s.Router.Handle("POST /compare", Chain(s.CompareTeamsHandler(), paramsMiddleware))
	s.Router.Handle("GET /threats/{teamID}", Chain(s.ThreatsHandler(), paramsMiddleware))
	s.Router.Handle("GET /maps/{teamID}", Chain(s.MapStatsHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
