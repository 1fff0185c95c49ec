package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/wanderstay/wanderstay/internal/container"
	handlers "github.com/wanderstay/wanderstay/internal/interface/http"
	"github.com/wanderstay/wanderstay/internal/interface/middleware"
)

// PlaceModule wires listing routes.
// Public: GET /places, GET /places/:id, GET /search
// Protected: POST /places, PUT /places, GET /user-places
type PlaceModule struct {
	Handler *handlers.PlaceHandler
}

func NewPlaceModule(h *handlers.PlaceHandler) *PlaceModule {
	return &PlaceModule{Handler: h}
}

func (m *PlaceModule) Register(rg *gin.RouterGroup) {
	rg.GET("/places", m.Handler.ListAll)
	rg.GET("/places/:id", m.Handler.GetByID)
	rg.GET("/search", m.Handler.Search)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetJWT()))
	{
		auth.POST("/places", m.Handler.Create)
		auth.PUT("/places", m.Handler.Update)
		auth.GET("/user-places", m.Handler.ListMine)
	}
}
