package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderstay/wanderstay/config"
)

// WebModule serves the static client views and the uploaded media files, and
// exposes the liveness endpoint. When media lives in GCS there is nothing to
// serve locally, so /uploads is only mounted for the disk backend.
type WebModule struct {
	Engine *gin.Engine
	Cfg    *config.Config
}

func NewWebModule(engine *gin.Engine, cfg *config.Config) *WebModule {
	return &WebModule{Engine: engine, Cfg: cfg}
}

func (m *WebModule) Register(rg *gin.RouterGroup) {
	if m.Cfg.GCSBucket == "" {
		m.Engine.Static("/uploads", m.Cfg.UploadsDir)
	}
	m.Engine.StaticFile("/", "web/index.html")
	m.Engine.StaticFile("/app.js", "web/app.js")

	rg.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	// The client reads the media base from here instead of hardcoding it.
	rg.GET("/client-config", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"media_base_url": m.Cfg.MediaBaseURL})
	})
}
