package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderstay/wanderstay/internal/domain/entity"
	"github.com/wanderstay/wanderstay/internal/domain/repository"
)

// PlaceRepository stores listings. Photos and perks live in JSONB columns so
// the list-valued fields stay a single document alongside the row.
type PlaceRepository struct {
	pool *pgxpool.Pool
}

func NewPlaceRepository(pool *pgxpool.Pool) *PlaceRepository {
	return &PlaceRepository{pool: pool}
}

func marshalList(v []string) ([]byte, error) {
	if v == nil {
		v = []string{}
	}
	return json.Marshal(v)
}

func scanPlace(row pgx.Row, p *entity.Place) error {
	var photos, perks []byte
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Address, &p.Description,
		&photos, &perks, &p.ExtraInfo, &p.CheckIn, &p.CheckOut,
		&p.MaxGuests, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}
	if err := json.Unmarshal(photos, &p.Photos); err != nil {
		return err
	}
	return json.Unmarshal(perks, &p.Perks)
}

const placeColumns = `id, owner_id, title, address, description, photos, perks,
	extra_info, check_in, check_out, max_guests, price, created_at, updated_at`

func (r *PlaceRepository) Create(ctx context.Context, p *entity.Place) error {
	photos, err := marshalList(p.Photos)
	if err != nil {
		return err
	}
	perks, err := marshalList(p.Perks)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO places (owner_id, title, address, description, photos, perks,
			extra_info, check_in, check_out, max_guests, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, p.OwnerID, p.Title, p.Address, p.Description, photos, perks,
		p.ExtraInfo, p.CheckIn, p.CheckOut, p.MaxGuests, p.Price)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*entity.Place, error) {
	// The id comes straight from the URL; a malformed value is a plain miss,
	// not a query error.
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}
	p := &entity.Place{}
	row := r.pool.QueryRow(ctx, `SELECT `+placeColumns+` FROM places WHERE id = $1`, id)
	if err := scanPlace(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PlaceRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Place, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+placeColumns+` FROM places WHERE owner_id = $1 ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPlaces(rows)
}

func (r *PlaceRepository) ListAll(ctx context.Context) ([]entity.Place, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+placeColumns+` FROM places ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPlaces(rows)
}

func collectPlaces(rows pgx.Rows) ([]entity.Place, error) {
	out := make([]entity.Place, 0)
	for rows.Next() {
		var p entity.Place
		if err := scanPlace(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update replaces every editable field wholesale; the owner column is never
// touched.
func (r *PlaceRepository) Update(ctx context.Context, p *entity.Place) error {
	photos, err := marshalList(p.Photos)
	if err != nil {
		return err
	}
	perks, err := marshalList(p.Perks)
	if err != nil {
		return err
	}
	p.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE places
		SET title = $1, address = $2, description = $3, photos = $4, perks = $5,
			extra_info = $6, check_in = $7, check_out = $8, max_guests = $9,
			price = $10, updated_at = $11
		WHERE id = $12
	`, p.Title, p.Address, p.Description, photos, perks,
		p.ExtraInfo, p.CheckIn, p.CheckOut, p.MaxGuests, p.Price, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.PlaceRepository = (*PlaceRepository)(nil)
