package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wanderstay/wanderstay/internal/application"
	"github.com/wanderstay/wanderstay/internal/interface/middleware"
	"github.com/wanderstay/wanderstay/pkg/response"
	"github.com/wanderstay/wanderstay/pkg/validation"
)

type BookingHandler struct {
	Svc    *application.BookingService
	Logger *logrus.Logger
}

func NewBookingHandler(svc *application.BookingService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

type bookingRequest struct {
	Place    string `json:"place" binding:"required,uuid"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Guests   int    `json:"number_of_guests" binding:"omitempty,gte=1"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Price    int    `json:"price" binding:"omitempty,gte=0"`
}

// Create POST /bookings (auth required). Dates are parsed, not validated
// against each other; overlap and capacity checks are non-goals.
func (h *BookingHandler) Create(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", map[string]string{"check_in": "must be a date (YYYY-MM-DD)"})
		return
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", map[string]string{"check_out": "must be a date (YYYY-MM-DD)"})
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	b, err := h.Svc.Create(c.Request.Context(), uid, application.BookingInput{
		PlaceID:  req.Place,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   req.Guests,
		Name:     req.Name,
		Phone:    req.Phone,
		Price:    req.Price,
	})
	if err != nil {
		response.Error[any](c, statusFor(err), "failed to create booking", nil)
		return
	}
	response.Success(c, http.StatusOK, b, "booking created", nil)
}

// List GET /bookings (auth required) — each booking carries its place
// resolved inline.
func (h *BookingHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	bookings, err := h.Svc.ListByUser(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, statusFor(err), "failed to list bookings", nil)
		return
	}
	response.Success(c, http.StatusOK, bookings, "your bookings", nil)
}
