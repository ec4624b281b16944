package store

import "github.com/mkhalitov/shoplist/internal/logger"

// Repositories bundles the persistence interfaces handed to the service
// layer at startup.
type Repositories struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
}

// NewRepositories wires both repositories to the shared database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		ItemRepository: NewItemRepository(db, logger),
	}
}
