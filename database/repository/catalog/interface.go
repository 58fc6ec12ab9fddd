package catalogRepo

import (
	"context"

	"jojocolaresbeauty/models"
)

// ServiceRepository persists the studio's bookable services catalogue.
type ServiceRepository interface {
	Create(ctx context.Context, svc models.Service) (string, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Service, error)
	ListAll(ctx context.Context) ([]models.Service, error)
	Update(ctx context.Context, svc models.Service) error
	DeleteByID(ctx context.Context, id string) error
}
