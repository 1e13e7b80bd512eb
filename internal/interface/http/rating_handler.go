package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ratehub/store-rating-api/internal/application"
	"github.com/ratehub/store-rating-api/internal/interface/middleware"
	"github.com/ratehub/store-rating-api/pkg/response"
	"github.com/ratehub/store-rating-api/pkg/validation"
)

type RatingHandler struct {
	Svc    *application.RatingService
	Logger *logrus.Logger
}

func NewRatingHandler(svc *application.RatingService, logger *logrus.Logger) *RatingHandler {
	return &RatingHandler{Svc: svc, Logger: logger}
}

type submitRatingRequest struct {
	StoreID int64 `json:"store_id" binding:"required"`
	Rating  int   `json:"rating" binding:"required,gte=1,lte=5"`
}

// Submit records or overwrites the caller's rating for a store.
func (h *RatingHandler) Submit(c *gin.Context) {
	uid := middleware.UserID(c)
	var req submitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failure(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.Submit(c.Request.Context(), uid, req.StoreID, req.Rating); err != nil {
		response.Failure(c, http.StatusInternalServerError, "failed to submit rating", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListOwn returns the caller's rating history.
func (h *RatingHandler) ListOwn(c *gin.Context) {
	uid := middleware.UserID(c)
	ratings, err := h.Svc.ListForUser(c.Request.Context(), uid)
	if err != nil {
		response.Failure(c, http.StatusInternalServerError, "failed to fetch user ratings", err.Error())
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// OwnerRollup returns per-store aggregates for every store the caller owns,
// including stores nobody has rated yet.
func (h *RatingHandler) OwnerRollup(c *gin.Context) {
	uid := middleware.UserID(c)
	rollups, err := h.Svc.OwnerRollup(c.Request.Context(), uid)
	if err != nil {
		response.Failure(c, http.StatusInternalServerError, "failed to fetch store ratings", err.Error())
		return
	}
	c.JSON(http.StatusOK, rollups)
}

// Raters lists who rated the caller's stores, one row per rating.
func (h *RatingHandler) Raters(c *gin.Context) {
	uid := middleware.UserID(c)
	raters, err := h.Svc.RatersForOwner(c.Request.Context(), uid)
	if err != nil {
		response.Failure(c, http.StatusInternalServerError, "failed to fetch users who rated stores", err.Error())
		return
	}
	c.JSON(http.StatusOK, raters)
}

// Count returns the global rating count.
func (h *RatingHandler) Count(c *gin.Context) {
	count, err := h.Svc.Count(c.Request.Context())
	if err != nil {
		response.Failure(c, http.StatusInternalServerError, "failed to count ratings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
