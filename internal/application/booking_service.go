package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wanderstay/wanderstay/internal/domain/entity"
	"github.com/wanderstay/wanderstay/internal/domain/repository"
	"github.com/wanderstay/wanderstay/pkg/helpers"
	"github.com/wanderstay/wanderstay/pkg/mailer"
)

// BookingService creates bookings and lists them with their listing resolved.
// There is deliberately no availability, date-ordering or capacity check:
// overlapping bookings for the same listing are a product non-goal.
type BookingService struct {
	Repo   repository.BookingRepository
	Places repository.PlaceRepository
	Users  repository.UserRepository
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewBookingService(repo repository.BookingRepository, places repository.PlaceRepository, users repository.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *BookingService {
	return &BookingService{Repo: repo, Places: places, Users: users, Pub: pub, Logger: logger}
}

// BookingInput carries the caller-supplied booking fields.
type BookingInput struct {
	PlaceID  string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Name     string
	Phone    string
	Price    int
}

// Create persists the booking and enqueues a confirmation email best-effort.
func (s *BookingService) Create(ctx context.Context, userID string, in BookingInput) (*entity.Booking, error) {
	b := &entity.Booking{
		PlaceID:  in.PlaceID,
		UserID:   userID,
		CheckIn:  in.CheckIn,
		CheckOut: in.CheckOut,
		Guests:   in.Guests,
		Name:     in.Name,
		Phone:    in.Phone,
		Price:    in.Price,
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}
	s.enqueueConfirmation(ctx, b)
	return b, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]entity.BookingWithPlace, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// enqueueConfirmation publishes a confirmation job for the email worker.
// Failures are logged and swallowed; the booking stands either way.
func (s *BookingService) enqueueConfirmation(ctx context.Context, b *entity.Booking) {
	if s.Pub == nil {
		return
	}
	u, err := s.Users.GetByID(ctx, b.UserID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("booking_id", b.ID).Warn("confirmation email: user lookup failed")
		}
		return
	}
	p, err := s.Places.GetByID(ctx, b.PlaceID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("booking_id", b.ID).Warn("confirmation email: place lookup failed")
		}
		return
	}
	job := mailer.BookingConfirmationJob{
		To:          u.Email,
		GuestName:   u.Name,
		PlaceTitle:  p.Title,
		PlaceAddr:   p.Address,
		CheckIn:     b.CheckIn.Format("2006-01-02"),
		CheckOut:    b.CheckOut.Format("2006-01-02"),
		Guests:      b.Guests,
		Price:       b.Price,
		BookingID:   b.ID,
		ContactName: b.Name,
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("booking_id", b.ID).Warn("confirmation email enqueue failed")
	}
}
