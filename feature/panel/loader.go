package panel

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature wraps an existing service.
func NewFeature(service *Service, handler *Handler) *Feature {
	return &Feature{service: service, handler: handler}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "panel"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the panel service.
func (f *Feature) Service() *Service {
	return f.service
}
