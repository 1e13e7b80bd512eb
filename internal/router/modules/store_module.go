package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/ratehub/store-rating-api/internal/interface/http"
	"github.com/ratehub/store-rating-api/internal/interface/middleware"
	"github.com/ratehub/store-rating-api/pkg/helpers"
)

type StoreModule struct {
	Handler *handlers.StoreHandler
	Tokens  *helpers.TokenManager
}

func NewStoreModule(h *handlers.StoreHandler, tokens *helpers.TokenManager) *StoreModule {
	return &StoreModule{Handler: h, Tokens: tokens}
}

func (m *StoreModule) Register(rg *gin.RouterGroup) {
	stores := rg.Group("/stores")
	stores.Use(middleware.Auth(m.Tokens))
	{
		stores.GET("", m.Handler.List)
		stores.POST("", m.Handler.Create)
	}
}
