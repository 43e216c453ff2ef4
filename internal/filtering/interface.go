package filtering

// FilterStore defines the interface for predicate queries over the shelf.
type FilterStore interface {
	FilterGames(f Filter) ([]GameSummary, error)
}
