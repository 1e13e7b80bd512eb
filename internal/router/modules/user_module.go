package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/ratehub/store-rating-api/internal/interface/http"
	"github.com/ratehub/store-rating-api/internal/interface/middleware"
	"github.com/ratehub/store-rating-api/pkg/helpers"
)

type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  *helpers.TokenManager
}

func NewUserModule(h *handlers.UserHandler, tokens *helpers.TokenManager) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.Auth(m.Tokens))
	{
		users.GET("", m.Handler.List)
		users.POST("", m.Handler.Create)
		users.PUT("/update-password", m.Handler.UpdatePassword)
	}
}
