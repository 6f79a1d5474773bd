package contracts

import (
	"context"

	"conexperto-service/internal/app/models"
)

// ServiceRepository reads the sellable-service system of record.
type ServiceRepository interface {
	FindByID(ctx context.Context, serviceID string) (*models.Service, error)
}

// AddonRepository reads administrator-defined add-ons.
type AddonRepository interface {
	FindActiveByIDs(ctx context.Context, addonIDs []string) ([]models.Addon, error)
}

// ExpertRepository resolves the expert-side data the reservation needs.
type ExpertRepository interface {
	FindTimezoneByID(ctx context.Context, expertID string) (string, error)
}
