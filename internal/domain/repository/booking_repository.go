package repository

import (
	"context"

	"github.com/wanderstay/wanderstay/internal/domain/entity"
)

// BookingRepository defines the interface for booking storage.
type BookingRepository interface {
	Create(ctx context.Context, b *entity.Booking) error
	// ListByUser returns the user's bookings with each referenced place
	// resolved inline.
	ListByUser(ctx context.Context, userID string) ([]entity.BookingWithPlace, error)
}
