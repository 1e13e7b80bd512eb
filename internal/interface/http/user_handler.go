package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ratehub/store-rating-api/internal/application"
	"github.com/ratehub/store-rating-api/internal/interface/middleware"
	"github.com/ratehub/store-rating-api/pkg/response"
	"github.com/ratehub/store-rating-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required,fullname"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Address  string `json:"address" binding:"address"`
	Role     string `json:"role" binding:"required,role"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,pwd"`
}

// List returns every user without the password hash.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Failure(c, http.StatusInternalServerError, "failed to fetch users", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create is the admin-style user creation with an explicit role.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failure(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.Create(c.Request.Context(), req.Name, req.Email, req.Password, req.Address, req.Role); err != nil {
		response.Failure(c, http.StatusInternalServerError, "failed to create user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdatePassword changes the caller's own password after re-verifying the
// current one.
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	uid := middleware.UserID(c)
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failure(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	err := h.Svc.UpdatePassword(c.Request.Context(), uid, req.CurrentPassword, req.NewPassword)
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		response.Message(c, http.StatusNotFound, "User not found.")
	case errors.Is(err, application.ErrWrongPassword):
		response.Message(c, http.StatusUnauthorized, "Incorrect current password.")
	case err != nil:
		response.Failure(c, http.StatusInternalServerError, "failed to update password", err.Error())
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated successfully!"})
	}
}
