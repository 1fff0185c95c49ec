package application

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wanderstay/wanderstay/internal/domain/entity"
	"github.com/wanderstay/wanderstay/internal/domain/repository"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakePlaceRepo struct {
	mu     sync.Mutex
	places map[string]*entity.Place
}

func newFakePlaceRepo() *fakePlaceRepo {
	return &fakePlaceRepo{places: map[string]*entity.Place{}}
}

func copyPlace(p *entity.Place) *entity.Place {
	cp := *p
	cp.Photos = append([]string(nil), p.Photos...)
	cp.Perks = append([]string(nil), p.Perks...)
	return &cp
}

func (f *fakePlaceRepo) Create(_ context.Context, p *entity.Place) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = uuid.NewString()
	f.places[p.ID] = copyPlace(p)
	return nil
}

func (f *fakePlaceRepo) GetByID(_ context.Context, id string) (*entity.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.places[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyPlace(p), nil
}

func (f *fakePlaceRepo) ListByOwner(_ context.Context, ownerID string) ([]entity.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Place, 0)
	for _, p := range f.places {
		if p.OwnerID == ownerID {
			out = append(out, *copyPlace(p))
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) ListAll(_ context.Context) ([]entity.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Place, 0)
	for _, p := range f.places {
		out = append(out, *copyPlace(p))
	}
	return out, nil
}

func (f *fakePlaceRepo) Update(_ context.Context, p *entity.Place) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.places[p.ID]; !ok {
		return repository.ErrNotFound
	}
	f.places[p.ID] = copyPlace(p)
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []entity.Booking
	places   *fakePlaceRepo
}

func newFakeBookingRepo(places *fakePlaceRepo) *fakeBookingRepo {
	return &fakeBookingRepo{places: places}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	if _, err := f.places.GetByID(ctx, b.PlaceID); err != nil {
		return repository.ErrNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = uuid.NewString()
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID string) ([]entity.BookingWithPlace, error) {
	f.mu.Lock()
	bookings := append([]entity.Booking(nil), f.bookings...)
	f.mu.Unlock()

	out := make([]entity.BookingWithPlace, 0)
	for _, b := range bookings {
		if b.UserID != userID {
			continue
		}
		p, err := f.places.GetByID(ctx, b.PlaceID)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.BookingWithPlace{Booking: b, Place: *p})
	}
	return out, nil
}
