package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wanderstay/wanderstay/internal/domain/repository"
)

func TestBookingService_CreateAndList(t *testing.T) {
	places := newFakePlaceRepo()
	users := newFakeUserRepo()
	svc := NewBookingService(newFakeBookingRepo(places), places, users, nil, nil)
	placeSvc := newPlaceService(places)
	ctx := context.Background()

	p, err := placeSvc.Create(ctx, "owner-a", cabinFields())
	assert.NoError(t, err)

	in := BookingInput{
		PlaceID:  p.ID,
		CheckIn:  time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
		Guests:   2,
		Name:     "Bob Guest",
		Phone:    "+15550100",
		Price:    400,
	}
	b, err := svc.Create(ctx, "guest-1", in)
	assert.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "guest-1", b.UserID)

	got, err := svc.ListByUser(ctx, "guest-1")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, p.ID, got[0].PlaceID)
	assert.Equal(t, "Cabin", got[0].Place.Title, "listing resolved on the booking")

	other, err := svc.ListByUser(ctx, "guest-2")
	assert.NoError(t, err)
	assert.Empty(t, other)
}

func TestBookingService_CreateUnknownPlace(t *testing.T) {
	places := newFakePlaceRepo()
	svc := NewBookingService(newFakeBookingRepo(places), places, newFakeUserRepo(), nil, nil)

	_, err := svc.Create(context.Background(), "guest-1", BookingInput{PlaceID: "missing"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBookingService_OverlapsAllowed(t *testing.T) {
	places := newFakePlaceRepo()
	svc := NewBookingService(newFakeBookingRepo(places), places, newFakeUserRepo(), nil, nil)
	placeSvc := newPlaceService(places)
	ctx := context.Background()

	p, err := placeSvc.Create(ctx, "owner-a", cabinFields())
	assert.NoError(t, err)

	in := BookingInput{
		PlaceID:  p.ID,
		CheckIn:  time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
		Guests:   2,
		Name:     "Bob Guest",
		Phone:    "+15550100",
		Price:    400,
	}
	_, err = svc.Create(ctx, "guest-1", in)
	assert.NoError(t, err)
	// Same listing, same dates: accepted, no availability check.
	_, err = svc.Create(ctx, "guest-2", in)
	assert.NoError(t, err)
}
