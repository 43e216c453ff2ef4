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
		ScoresRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gameshelf_scores_recorded_total",
			Help: "The total number of score observations recorded.",
		}),
		CompetitionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gameshelf_competitions_created_total",
			Help: "The total number of competitions created.",
		}),
		CompetitionsSettled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gameshelf_competitions_settled_total",
			Help: "The total number of competitions settled into stars.",
		}),
		StarsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gameshelf_stars_awarded_total",
			Help: "The total number of stars paid out by settlements.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gameshelf_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gameshelf_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gameshelf_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.ScoresRecorded,
		s.CompetitionsCreated,
		s.CompetitionsSettled,
		s.StarsAwarded,
		s.NotifSent,
		s.NotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncScoresRecorded() {
	s.ScoresRecorded.Inc()
}

func (s *Service) IncCompetitionsCreated() {
	s.CompetitionsCreated.Inc()
}

func (s *Service) IncCompetitionsSettled() {
	s.CompetitionsSettled.Inc()
}

func (s *Service) AddStarsAwarded(n int) {
	if n > 0 {
		s.StarsAwarded.Add(float64(n))
	}
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
