package catalog

// CatalogStore defines the interface for managing the player and game catalog.
type CatalogStore interface {
	ListPlayers() ([]Player, error)
	CreatePlayer(name string) (Player, error)
	RenamePlayer(id, newName string) error
	DeletePlayer(id string) error
	ListGames() ([]Game, error)
	CreateGame(fields GameFields) (Game, error)
	UpdateGame(id string, fields GameFields) error
	DeleteGame(id string) error
}
