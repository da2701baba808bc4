package http

import (
	"github.com/MKhiriev/go-square/internal/config"
	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
