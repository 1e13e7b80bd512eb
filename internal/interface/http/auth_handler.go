package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ratehub/store-rating-api/internal/application"
	"github.com/ratehub/store-rating-api/pkg/response"
	"github.com/ratehub/store-rating-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,fullname"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Address  string `json:"address" binding:"address"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a self-service account; the role is always "user".
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failure(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Address); err != nil {
		response.Failure(c, http.StatusInternalServerError, "failed to register user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Login verifies credentials and returns the minted token with the role so
// the client can dispatch to the right dashboard.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failure(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Message(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	c.JSON(http.StatusOK, res)
}
