package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/wanderstay/wanderstay/internal/container"
	handlers "github.com/wanderstay/wanderstay/internal/interface/http"
	"github.com/wanderstay/wanderstay/internal/interface/middleware"
)

// BookingModule wires booking routes, all authenticated.
type BookingModule struct {
	Handler *handlers.BookingHandler
}

func NewBookingModule(h *handlers.BookingHandler) *BookingModule {
	return &BookingModule{Handler: h}
}

func (m *BookingModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetJWT()))
	{
		auth.POST("/bookings", m.Handler.Create)
		auth.GET("/bookings", m.Handler.List)
	}
}
