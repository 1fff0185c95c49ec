package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wanderstay/wanderstay/internal/application"
	"github.com/wanderstay/wanderstay/internal/domain/entity"
	"github.com/wanderstay/wanderstay/internal/interface/middleware"
	"github.com/wanderstay/wanderstay/pkg/response"
	"github.com/wanderstay/wanderstay/pkg/validation"
)

type PlaceHandler struct {
	Svc    *application.PlaceService
	Logger *logrus.Logger
}

func NewPlaceHandler(svc *application.PlaceService, logger *logrus.Logger) *PlaceHandler {
	return &PlaceHandler{Svc: svc, Logger: logger}
}

type placeFieldsRequest struct {
	Title       string   `json:"title" binding:"required"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	Photos      []string `json:"photos"`
	Perks       []string `json:"perks"`
	ExtraInfo   string   `json:"extra_info"`
	CheckIn     string   `json:"check_in"`
	CheckOut    string   `json:"check_out"`
	MaxGuests   int      `json:"max_guests" binding:"omitempty,gte=1"`
	Price       int      `json:"price" binding:"omitempty,gte=0"`
}

type updatePlaceRequest struct {
	ID string `json:"id" binding:"required,uuid"`
	placeFieldsRequest
}

func (r *placeFieldsRequest) fields() entity.PlaceFields {
	return entity.PlaceFields{
		Title:       r.Title,
		Address:     r.Address,
		Description: r.Description,
		Photos:      r.Photos,
		Perks:       r.Perks,
		ExtraInfo:   r.ExtraInfo,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		MaxGuests:   r.MaxGuests,
		Price:       r.Price,
	}
}

// Create POST /places (auth required)
func (h *PlaceHandler) Create(c *gin.Context) {
	var req placeFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	p, err := h.Svc.Create(c.Request.Context(), uid, req.fields())
	if err != nil {
		response.Error[any](c, statusFor(err), "failed to create place", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "place created", nil)
}

// ListMine GET /user-places (auth required)
func (h *PlaceHandler) ListMine(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	places, err := h.Svc.ListByOwner(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, statusFor(err), "failed to list places", nil)
		return
	}
	response.Success(c, http.StatusOK, places, "your places", nil)
}

// GetByID GET /places/:id (public). A missing id is a clean 404.
func (h *PlaceHandler) GetByID(c *gin.Context) {
	p, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, statusFor(err), "place not found", nil)
		return
	}
	response.Success(c, http.StatusOK, p, "place", nil)
}

// Update PUT /places (auth required; id in body). Non-owners get a 403 and
// the stored listing is left unchanged.
func (h *PlaceHandler) Update(c *gin.Context) {
	var req updatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	if _, err := h.Svc.Update(c.Request.Context(), req.ID, uid, req.fields()); err != nil {
		response.Error[any](c, statusFor(err), "failed to update place", nil)
		return
	}
	response.Success(c, http.StatusOK, "ok", "place updated", nil)
}

// ListAll GET /places (public)
func (h *PlaceHandler) ListAll(c *gin.Context) {
	places, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		response.Error[any](c, statusFor(err), "failed to list places", nil)
		return
	}
	response.Success(c, http.StatusOK, places, "places", nil)
}

// Search GET /search?q= (public)
func (h *PlaceHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, 20)
	if err != nil {
		response.Error[any](c, statusFor(err), "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}
