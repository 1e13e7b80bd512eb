package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ratehub/store-rating-api/internal/container"
	handlers "github.com/ratehub/store-rating-api/internal/interface/http"
	"github.com/ratehub/store-rating-api/internal/interface/middleware"
)

// AuthModule mounts the only ungated routes: registration and login.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
