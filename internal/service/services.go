package service

import (
	"github.com/mkhalitov/shoplist/internal/config"
	"github.com/mkhalitov/shoplist/internal/logger"
	"github.com/mkhalitov/shoplist/internal/store"
	"github.com/mkhalitov/shoplist/internal/utils"
	"github.com/mkhalitov/shoplist/internal/validators"
)

type Services struct {
	AuthService AuthService
	ItemService ItemService
}

func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	idGenerator := utils.NewUUIDGenerator()

	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, idGenerator, cfg, logger),
		ItemService: NewItemService(repositories.ItemRepository, validators.NewItemValidator(), idGenerator, logger),
	}
}
