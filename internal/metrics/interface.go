package metrics

// Metrics defines the counters the services report into.
type Metrics interface {
	IncScoresRecorded()
	IncCompetitionsCreated()
	IncCompetitionsSettled()
	AddStarsAwarded(n int)
	IncNotifSent()
	IncNotifFailed()
	SetStartupTime(duration float64)
}
