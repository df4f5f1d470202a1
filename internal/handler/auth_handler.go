package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campustrack/campustrack-backend/internal/metrics"
	"github.com/campustrack/campustrack-backend/internal/middleware"
	"github.com/campustrack/campustrack-backend/internal/model"
	"github.com/campustrack/campustrack-backend/internal/repository"
	"github.com/campustrack/campustrack-backend/internal/response"
	"github.com/campustrack/campustrack-backend/internal/service"
	"github.com/campustrack/campustrack-backend/internal/validator"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService    *service.AuthService
	profileService *service.ProfileService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, profileService *service.ProfileService) *AuthHandler {
	return &AuthHandler{authService: authService, profileService: profileService}
}

// SignUp godoc
// POST /api/v1/auth/signup
// Registers a profile and signs it in immediately (auto-confirm).
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req model.SignUpRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	profile, err := h.profileService.SignUp(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	token, err := h.authService.GenerateToken(c.Request.Context(), profile.ID, profile.Email, profile.Role)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"token":   token,
		"profile": profile,
	})
}

// SignIn godoc
// POST /api/v1/auth/signin
// Validates email + password, returns a JWT.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	profile, err := h.profileService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		metrics.SignIns.WithLabelValues("rejected").Inc()
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(profile.PasswordHash, req.Password); err != nil {
		metrics.SignIns.WithLabelValues("rejected").Inc()
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateToken(c.Request.Context(), profile.ID, profile.Email, profile.Role)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	metrics.SignIns.WithLabelValues("ok").Inc()
	response.Success(c, http.StatusOK, gin.H{
		"token":   token,
		"profile": profile,
	})
}

// SignOut godoc
// POST /api/v1/auth/signout
// Invalidates the current session.
func (h *AuthHandler) SignOut(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.SignOut(c.Request.Context(), claims.ProfileID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// Me godoc
// GET /api/v1/auth/me
// Returns the profile of the current session.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	profile, err := h.profileService.GetByID(c.Request.Context(), claims.ProfileID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}
