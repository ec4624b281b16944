package http

import (
	"github.com/mkhalitov/shoplist/internal/logger"
	"github.com/mkhalitov/shoplist/internal/service"
)

type Handler struct {
	services *service.Services

	// version is reported by the API info route.
	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		logger:   logger,
	}
}
