package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wanderstay/wanderstay/internal/container"
	handlers "github.com/wanderstay/wanderstay/internal/interface/http"
	"github.com/wanderstay/wanderstay/internal/interface/middleware"
)

// AuthModule wires account routes.
// Public: POST /register, POST /login, POST /logout
// Protected: GET /profile
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints get a per-IP limiter; private addresses bypass it.
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.POST("/register", limiter, m.Handler.Register)
	rg.POST("/login", limiter, m.Handler.Login)
	rg.POST("/logout", m.Handler.Logout)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetJWT()))
	{
		auth.GET("/profile", m.Handler.Profile)
	}
}
