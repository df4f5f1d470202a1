package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campustrack/campustrack-backend/internal/middleware"
	"github.com/campustrack/campustrack-backend/internal/model"
	"github.com/campustrack/campustrack-backend/internal/response"
	"github.com/campustrack/campustrack-backend/internal/service"
	"github.com/campustrack/campustrack-backend/internal/validator"
)

// ProfileHandler handles the settings screen's profile operations.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get godoc
// GET /api/v1/profile
// Returns the signed-in profile.
func (h *ProfileHandler) Get(c *gin.Context) {
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

// Update godoc
// PUT /api/v1/profile
// Edits the signed-in profile's display fields.
func (h *ProfileHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.UpdateProfileRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), claims.ProfileID, req.FullName, req.AvatarURL)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// ChangePassword godoc
// PUT /api/v1/profile/password
// Requires the current password before storing a new hash.
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.ChangePasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	err := h.profileService.ChangePassword(c.Request.Context(), claims.ProfileID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}
