package scoring

// ScoreStore defines the interface for recording scores and ranking games.
type ScoreStore interface {
	RecordScore(gameID, playerID string, value float64) (Score, error)
	RankGames(order Order, limit int, playerID string) ([]GameRank, error)
}
