package http

import (
	"net/http"

	"github.com/mvoss/gameshelf/internal/catalog"
	"github.com/mvoss/gameshelf/internal/competition"
	"github.com/mvoss/gameshelf/internal/filtering"
	"github.com/mvoss/gameshelf/internal/metrics"
	"github.com/mvoss/gameshelf/internal/notifier"
	"github.com/mvoss/gameshelf/internal/scoring"
)

type Server struct {
	Catalog        catalog.CatalogStore
	Scores         scoring.ScoreStore
	Filters        filtering.FilterStore
	Competitions   competition.CompetitionStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Notifier       notifier.Notifier
	Router         *http.ServeMux
}
