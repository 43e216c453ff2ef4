package competition

// CompetitionStore defines the interface for managing competitions.
//
// A competition is Open from the moment it is created. Settle is the only
// terminal transition: it converts accumulated wins into player stars and
// removes the competition entirely.
type CompetitionStore interface {
	Create(name string, objective int, memberIDs []string) (Competition, error)
	ListOpen() ([]Progress, error)
	GetProgress(id string) (*Progress, error)
	RecordWins(id string, winsByPlayer map[string]int) error
	Settle(id string) (*SettlementResult, error)
}
