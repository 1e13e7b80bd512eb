package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/ratehub/store-rating-api/internal/interface/http"
	"github.com/ratehub/store-rating-api/internal/interface/middleware"
	"github.com/ratehub/store-rating-api/pkg/helpers"
)

type RatingModule struct {
	Handler *handlers.RatingHandler
	Tokens  *helpers.TokenManager
}

func NewRatingModule(h *handlers.RatingHandler, tokens *helpers.TokenManager) *RatingModule {
	return &RatingModule{Handler: h, Tokens: tokens}
}

func (m *RatingModule) Register(rg *gin.RouterGroup) {
	ratings := rg.Group("/ratings")
	ratings.Use(middleware.Auth(m.Tokens))
	{
		ratings.POST("", m.Handler.Submit)
		ratings.GET("/user", m.Handler.ListOwn)
		ratings.GET("/owner", m.Handler.OwnerRollup)
		ratings.GET("/owner/users-rated", m.Handler.Raters)
	}
}
