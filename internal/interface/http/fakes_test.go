package handlers

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/wanderstay/wanderstay/internal/domain/entity"
	"github.com/wanderstay/wanderstay/internal/domain/repository"
)

// In-memory repositories backing the route tests. Handlers run single
// requests sequentially here, so no locking is needed.

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memPlaceRepo struct {
	places map[string]*entity.Place
}

func newMemPlaceRepo() *memPlaceRepo {
	return &memPlaceRepo{places: map[string]*entity.Place{}}
}

func (m *memPlaceRepo) Create(_ context.Context, p *entity.Place) error {
	p.ID = uuid.NewString()
	cp := *p
	m.places[p.ID] = &cp
	return nil
}

func (m *memPlaceRepo) GetByID(_ context.Context, id string) (*entity.Place, error) {
	p, ok := m.places[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memPlaceRepo) ListByOwner(_ context.Context, ownerID string) ([]entity.Place, error) {
	out := make([]entity.Place, 0)
	for _, p := range m.places {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memPlaceRepo) ListAll(_ context.Context) ([]entity.Place, error) {
	out := make([]entity.Place, 0)
	for _, p := range m.places {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memPlaceRepo) Update(_ context.Context, p *entity.Place) error {
	if _, ok := m.places[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	m.places[p.ID] = &cp
	return nil
}

type memBookingRepo struct {
	bookings []entity.Booking
	places   *memPlaceRepo
}

func newMemBookingRepo(places *memPlaceRepo) *memBookingRepo {
	return &memBookingRepo{places: places}
}

func (m *memBookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	if _, err := m.places.GetByID(ctx, b.PlaceID); err != nil {
		return repository.ErrNotFound
	}
	b.ID = uuid.NewString()
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memBookingRepo) ListByUser(ctx context.Context, userID string) ([]entity.BookingWithPlace, error) {
	out := make([]entity.BookingWithPlace, 0)
	for _, b := range m.bookings {
		if b.UserID != userID {
			continue
		}
		p, err := m.places.GetByID(ctx, b.PlaceID)
		if err != nil {
			return nil, err
		}
		out = append(out, entity.BookingWithPlace{Booking: b, Place: *p})
	}
	return out, nil
}

type memMediaStore struct {
	saved map[string][]byte
}

func newMemMediaStore() *memMediaStore {
	return &memMediaStore{saved: map[string][]byte{}}
}

func (m *memMediaStore) Save(_ context.Context, filename, _ string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.saved[filename] = b
	return nil
}
