// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/Darshan-Yash/Periodic-table/internal/services"
	"github.com/Darshan-Yash/Periodic-table/internal/transport/httpdto"
	ptable_errors "github.com/Darshan-Yash/Periodic-table/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login and identity lookup.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup handles POST /api/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req httpdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid request body"))
		return
	}

	token, err := h.service.Signup(c.Request.Context(), services.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, ptable_errors.ErrAlreadyExists) {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Email already registered"))
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewTokenResponse(token))
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid request body"))
		return
	}

	token, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, ptable_errors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Invalid email or password"))
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewTokenResponse(token))
}

// Me handles GET /api/me.
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := services.SubjectFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Invalid token"))
		return
	}

	u, err := h.service.CurrentUser(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, ptable_errors.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpdto.NewErrorResponse("User not found"))
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.UserResponse{ID: u.ID, Email: u.Email})
}

func writeError(c *gin.Context, err error) {
	c.JSON(services.HTTPStatus(err), httpdto.NewErrorResponse(err.Error()))
}
