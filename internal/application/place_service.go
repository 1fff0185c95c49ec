package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/wanderstay/wanderstay/internal/domain/entity"
	"github.com/wanderstay/wanderstay/internal/domain/repository"
	"github.com/wanderstay/wanderstay/pkg/helpers"
)

const placesFeedKey = "places:all"

// PlaceService handles listing CRUD. The public feed is cached in redis for a
// short TTL, and listings are indexed into Elasticsearch best-effort for the
// search endpoint. Redis and ES are both optional; a nil client disables the
// concern without changing behavior.
type PlaceService struct {
	Repo     repository.PlaceRepository
	Redis    *redis.Client
	Logger   *logrus.Logger
	ES       *elasticsearch.Client
	ESIndex  string
	CacheTTL time.Duration
}

func NewPlaceService(repo repository.PlaceRepository, rdb *redis.Client, logger *logrus.Logger, es *elasticsearch.Client, esIndex string, cacheTTL time.Duration) *PlaceService {
	return &PlaceService{Repo: repo, Redis: rdb, Logger: logger, ES: es, ESIndex: esIndex, CacheTTL: cacheTTL}
}

func applyFields(p *entity.Place, f entity.PlaceFields) {
	p.Title = f.Title
	p.Address = f.Address
	p.Description = f.Description
	p.Photos = f.Photos
	p.Perks = f.Perks
	p.ExtraInfo = f.ExtraInfo
	p.CheckIn = f.CheckIn
	p.CheckOut = f.CheckOut
	p.MaxGuests = f.MaxGuests
	p.Price = f.Price
}

func (s *PlaceService) Create(ctx context.Context, ownerID string, f entity.PlaceFields) (*entity.Place, error) {
	p := &entity.Place{OwnerID: ownerID}
	applyFields(p, f)
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateFeed(ctx)
	_ = s.indexPlace(ctx, p)
	return p, nil
}

func (s *PlaceService) GetByID(ctx context.Context, id string) (*entity.Place, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *PlaceService) ListByOwner(ctx context.Context, ownerID string) ([]entity.Place, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

// ListAll returns every listing, serving from the redis feed cache when warm.
func (s *PlaceService) ListAll(ctx context.Context) ([]entity.Place, error) {
	if s.Redis != nil {
		var cached []entity.Place
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, placesFeedKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	places, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, placesFeedKey, places, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("places feed cache set failed")
		}
	}
	return places, nil
}

// Update replaces every editable field of the listing. Only the owner may
// update; a non-owner gets ErrForbidden and the stored listing is untouched.
func (s *PlaceService) Update(ctx context.Context, id, actorID string, f entity.PlaceFields) (*entity.Place, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanModifyPlace(actorID, p) {
		return nil, ErrForbidden
	}
	applyFields(p, f)
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateFeed(ctx)
	_ = s.indexPlace(ctx, p)
	return p, nil
}

func (s *PlaceService) invalidateFeed(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, placesFeedKey); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("places feed cache invalidation failed")
	}
}

func (s *PlaceService) indexPlace(ctx context.Context, p *entity.Place) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          p.ID,
		"owner":       p.OwnerID,
		"title":       p.Title,
		"address":     p.Address,
		"description": p.Description,
		"price":       p.Price,
		"max_guests":  p.MaxGuests,
		"updated_at":  p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("place_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("place_id", p.ID).Warn("es index response error")
	}
	return nil
}

// ErrSearchUnavailable is returned when search is requested but no
// Elasticsearch client is configured.
var ErrSearchUnavailable = errors.New("search unavailable")

// Search performs a multi_match over title, address and description.
func (s *PlaceService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return nil, ErrSearchUnavailable
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "address", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
