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

type Server struct {
	Store          reports.ReportStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Analyzer       *analytics.Analyzer
	Narrative      narrative.Generator
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
