package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wanderstay/wanderstay/internal/domain/entity"
	"github.com/wanderstay/wanderstay/internal/domain/repository"
)

func newPlaceService(repo repository.PlaceRepository) *PlaceService {
	// No redis/ES in unit tests; both are optional by design.
	return NewPlaceService(repo, nil, nil, nil, "", time.Minute)
}

func cabinFields() entity.PlaceFields {
	return entity.PlaceFields{
		Title:     "Cabin",
		Address:   "14 Shoreline Rd",
		Photos:    []string{"a.jpg", "b.jpg"},
		Perks:     []string{"wifi"},
		CheckIn:   "14:00",
		CheckOut:  "11:00",
		MaxGuests: 4,
		Price:     100,
	}
}

func TestPlaceService_CreateAndListByOwner(t *testing.T) {
	svc := newPlaceService(newFakePlaceRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-a", cabinFields())
	assert.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "owner-a", p.OwnerID)

	_, err = svc.Create(ctx, "owner-b", entity.PlaceFields{Title: "Loft", Price: 200})
	assert.NoError(t, err)

	mine, err := svc.ListByOwner(ctx, "owner-a")
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "Cabin", mine[0].Title)

	all, err := svc.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPlaceService_GetByIDMissing(t *testing.T) {
	svc := newPlaceService(newFakePlaceRepo())

	_, err := svc.GetByID(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlaceService_UpdateByOwner(t *testing.T) {
	svc := newPlaceService(newFakePlaceRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-a", cabinFields())
	assert.NoError(t, err)

	f := cabinFields()
	f.Title = "Renovated Cabin"
	updated, err := svc.Update(ctx, p.ID, "owner-a", f)
	assert.NoError(t, err)
	assert.Equal(t, "Renovated Cabin", updated.Title)

	got, err := svc.GetByID(ctx, p.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Renovated Cabin", got.Title)
	assert.Equal(t, "owner-a", got.OwnerID, "owner never changes on update")
}

func TestPlaceService_UpdateByNonOwnerForbidden(t *testing.T) {
	svc := newPlaceService(newFakePlaceRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-a", cabinFields())
	assert.NoError(t, err)

	f := cabinFields()
	f.Title = "Hijacked"
	_, err = svc.Update(ctx, p.ID, "owner-b", f)
	assert.ErrorIs(t, err, ErrForbidden)

	// The stored listing is untouched.
	got, err := svc.GetByID(ctx, p.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Cabin", got.Title)
}

func TestPlaceService_UpdateMissing(t *testing.T) {
	svc := newPlaceService(newFakePlaceRepo())

	_, err := svc.Update(context.Background(), "does-not-exist", "owner-a", cabinFields())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlaceService_SearchUnavailableWithoutES(t *testing.T) {
	svc := newPlaceService(newFakePlaceRepo())

	_, err := svc.Search(context.Background(), "cabin", 10)
	assert.ErrorIs(t, err, ErrSearchUnavailable)
}

func TestCanModifyPlace(t *testing.T) {
	p := &entity.Place{OwnerID: "owner-a"}
	assert.True(t, CanModifyPlace("owner-a", p))
	assert.False(t, CanModifyPlace("owner-b", p))
	assert.False(t, CanModifyPlace("", &entity.Place{OwnerID: ""}))
}
