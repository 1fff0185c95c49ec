package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/wanderstay/wanderstay/internal/container"
	handlers "github.com/wanderstay/wanderstay/internal/interface/http"
	"github.com/wanderstay/wanderstay/internal/interface/middleware"
)

// MediaModule wires photo ingestion routes. Uploads are authenticated but
// deliberately not rate limited.
type MediaModule struct {
	Handler *handlers.MediaHandler
}

func NewMediaModule(h *handlers.MediaHandler) *MediaModule {
	return &MediaModule{Handler: h}
}

func (m *MediaModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetJWT()))
	{
		auth.POST("/upload-by-link", m.Handler.UploadByLink)
		auth.POST("/upload", m.Handler.Upload)
	}
}
