package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderstay/wanderstay/internal/domain/entity"
	"github.com/wanderstay/wanderstay/internal/domain/repository"
)

const pgForeignKeyViolation = "23503"

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *entity.Booking) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO bookings (place_id, user_id, check_in, check_out, guests, name, phone, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, b.PlaceID, b.UserID, b.CheckIn, b.CheckOut, b.Guests, b.Name, b.Phone, b.Price)

	if err := row.Scan(&b.ID, &b.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

// ListByUser joins each booking with its listing so the API returns the place
// resolved inline.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]entity.BookingWithPlace, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.id, b.place_id, b.user_id, b.check_in, b.check_out, b.guests,
			b.name, b.phone, b.price, b.created_at,
			p.id, p.owner_id, p.title, p.address, p.description, p.photos, p.perks,
			p.extra_info, p.check_in, p.check_out, p.max_guests, p.price,
			p.created_at, p.updated_at
		FROM bookings b
		JOIN places p ON p.id = b.place_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.BookingWithPlace, 0)
	for rows.Next() {
		var bp entity.BookingWithPlace
		var photos, perks []byte
		if err := rows.Scan(
			&bp.ID, &bp.PlaceID, &bp.UserID, &bp.CheckIn, &bp.CheckOut, &bp.Guests,
			&bp.Name, &bp.Phone, &bp.Booking.Price, &bp.CreatedAt,
			&bp.Place.ID, &bp.Place.OwnerID, &bp.Place.Title, &bp.Place.Address,
			&bp.Place.Description, &photos, &perks, &bp.Place.ExtraInfo,
			&bp.Place.CheckIn, &bp.Place.CheckOut, &bp.Place.MaxGuests,
			&bp.Place.Price, &bp.Place.CreatedAt, &bp.Place.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(photos, &bp.Place.Photos); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(perks, &bp.Place.Perks); err != nil {
			return nil, err
		}
		out = append(out, bp)
	}
	return out, rows.Err()
}

var _ repository.BookingRepository = (*BookingRepository)(nil)
