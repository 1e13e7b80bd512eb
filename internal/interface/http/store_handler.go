package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ratehub/store-rating-api/internal/application"
	"github.com/ratehub/store-rating-api/pkg/response"
	"github.com/ratehub/store-rating-api/pkg/validation"
)

type StoreHandler struct {
	Svc    *application.StoreService
	Logger *logrus.Logger
}

func NewStoreHandler(svc *application.StoreService, logger *logrus.Logger) *StoreHandler {
	return &StoreHandler{Svc: svc, Logger: logger}
}

type createStoreRequest struct {
	Name    string `json:"name" binding:"required,fullname"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"address"`
	OwnerID int64  `json:"owner_id" binding:"required"`
}

// List returns every store with its average rating, 0 when unrated.
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.Svc.ListWithRating(c.Request.Context())
	if err != nil {
		response.Failure(c, http.StatusInternalServerError, "failed to fetch stores", err.Error())
		return
	}
	c.JSON(http.StatusOK, stores)
}

// Create registers a store under an owner.
func (h *StoreHandler) Create(c *gin.Context) {
	var req createStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failure(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.Create(c.Request.Context(), req.Name, req.Email, req.Address, req.OwnerID); err != nil {
		response.Failure(c, http.StatusInternalServerError, "failed to create store", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
