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

func NewServer(catalogStore catalog.CatalogStore, scoreStore scoring.ScoreStore, filterStore filtering.FilterStore, competitionStore competition.CompetitionStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, notifier notifier.Notifier) *Server {
	server := &Server{
		Catalog:        catalogStore,
		Scores:         scoreStore,
		Filters:        filterStore,
		Competitions:   competitionStore,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("POST /leaderboard/announce", Chain(s.AnnounceLeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(s.CreatePlayerHandler(), paramsMiddleware))
	s.Router.Handle("PUT /players/{id}", Chain(s.RenamePlayerHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /players/{id}", Chain(s.DeletePlayerHandler(), paramsMiddleware))

	s.Router.Handle("GET /games", Chain(s.ListGamesHandler(), paramsMiddleware))
	s.Router.Handle("POST /games", Chain(s.CreateGameHandler(), paramsMiddleware))
	s.Router.Handle("PUT /games/{id}", Chain(s.UpdateGameHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /games/{id}", Chain(s.DeleteGameHandler(), paramsMiddleware))
	s.Router.Handle("GET /games/filter", Chain(s.FilterGamesHandler(), paramsMiddleware))

	s.Router.Handle("POST /scores", Chain(s.RecordScoreHandler(), paramsMiddleware))
	s.Router.Handle("GET /rankings", Chain(s.RankingsHandler(), paramsMiddleware))

	s.Router.Handle("GET /competitions", Chain(s.ListCompetitionsHandler(), paramsMiddleware))
	s.Router.Handle("POST /competitions", Chain(s.CreateCompetitionHandler(), paramsMiddleware))
	s.Router.Handle("GET /competitions/{id}", Chain(s.CompetitionProgressHandler(), paramsMiddleware))
	s.Router.Handle("PUT /competitions/{id}/wins", Chain(s.RecordWinsHandler(), paramsMiddleware))
	s.Router.Handle("POST /competitions/{id}/settle", Chain(s.SettleCompetitionHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
