// Package catalog manages the service catalog and a stylist's bindings to
// it: which services they offer, and at what stylist-specific price.
package catalog

import (
	"context"

	"glowdesk/models"

	"go.uber.org/zap"
)

// BackendCatalog is the slice of the backend client this service uses.
type BackendCatalog interface {
	ListServices(ctx context.Context, token string) ([]models.Service, error)
	GetService(ctx context.Context, token string, id models.ID) (*models.Service, error)
	ListStylistServices(ctx context.Context, token string, stylistID models.ID) ([]models.StylistService, error)
	AddStylistService(ctx context.Context, token string, binding models.StylistService) (*models.StylistService, error)
	UpdateStylistService(ctx context.Context, token string, id models.ID, price float64, duration int) (*models.StylistService, error)
	DeleteStylistService(ctx context.Context, token string, id models.ID) error
}

type CatalogService interface {
	Services(ctx context.Context, token string) ([]models.Service, error)
	StylistServices(ctx context.Context, token string, stylistID models.ID) ([]models.StylistService, error)
	Bind(ctx context.Context, token string, binding models.StylistService) (*models.StylistService, error)
	UpdateBinding(ctx context.Context, token string, id models.ID, price float64, duration int) (*models.StylistService, error)
	Unbind(ctx context.Context, token string, id models.ID) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Backend BackendCatalog
	Logger  *zap.Logger
}

// Services returns the global catalog.
func (s *DefaultCatalogService) Services(ctx context.Context, token string) ([]models.Service, error) {
	return s.Backend.ListServices(ctx, token)
}

// StylistServices returns one stylist's bindings. Some backend versions
// return other stylists' rows on this query, so the result is filtered again
// here before it reaches the dashboard.
func (s *DefaultCatalogService) StylistServices(ctx context.Context, token string, stylistID models.ID) ([]models.StylistService, error) {
	bindings, err := s.Backend.ListStylistServices(ctx, token, stylistID)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.StylistService, 0, len(bindings))
	for _, b := range bindings {
		if b.StylistID == stylistID {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// Bind attaches a catalog service to a stylist.
func (s *DefaultCatalogService) Bind(ctx context.Context, token string, binding models.StylistService) (*models.StylistService, error) {
	created, err := s.Backend.AddStylistService(ctx, token, binding)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("service bound to stylist",
			zap.String("stylistId", binding.StylistID.String()),
			zap.String("serviceId", binding.ServiceID.String()))
	}
	return created, nil
}

// UpdateBinding changes the stylist-specific price/duration of a binding.
func (s *DefaultCatalogService) UpdateBinding(ctx context.Context, token string, id models.ID, price float64, duration int) (*models.StylistService, error) {
	return s.Backend.UpdateStylistService(ctx, token, id, price, duration)
}

// Unbind removes a binding by record id.
func (s *DefaultCatalogService) Unbind(ctx context.Context, token string, id models.ID) error {
	return s.Backend.DeleteStylistService(ctx, token, id)
}
