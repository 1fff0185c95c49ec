package repository

import (
	"context"

	"github.com/wanderstay/wanderstay/internal/domain/entity"
)

// PlaceRepository defines the interface for listing storage.
type PlaceRepository interface {
	Create(ctx context.Context, p *entity.Place) error
	GetByID(ctx context.Context, id string) (*entity.Place, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Place, error)
	ListAll(ctx context.Context) ([]entity.Place, error)
	// Update replaces every editable field of the stored listing.
	Update(ctx context.Context, p *entity.Place) error
}
