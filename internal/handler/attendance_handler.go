package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campustrack/campustrack-backend/internal/attendance"
	"github.com/campustrack/campustrack-backend/internal/middleware"
	"github.com/campustrack/campustrack-backend/internal/model"
	"github.com/campustrack/campustrack-backend/internal/response"
	"github.com/campustrack/campustrack-backend/internal/service"
	"github.com/campustrack/campustrack-backend/internal/validator"
)

// AttendanceHandler handles day-view loading and saving.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// GetDay godoc
// GET /api/v1/attendance/day?date=&search=&course=&section=&year=
// Returns the merged roster+records view for the date, filtered, with a
// summary and the distinct filter values for the full roster.
func (h *AttendanceHandler) GetDay(c *gin.Context) {
	date := c.Query("date")

	opts := attendance.FilterOptions{
		Query:   c.Query("search"),
		Course:  c.Query("course"),
		Section: c.Query("section"),
	}
	if year := c.Query("year"); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
			return
		}
		opts.Year = y
	}

	view, err := h.attendanceService.LoadDay(c.Request.Context(), date, opts)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidDate)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// SaveDay godoc
// PUT /api/v1/attendance/day
// Replaces every record for the date with the submitted entries. An empty
// staged set is rejected before any write; a storage failure leaves the
// date's records untouched.
func (h *AttendanceHandler) SaveDay(c *gin.Context) {
	var req model.SaveAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	saved, err := h.attendanceService.SaveDay(c.Request.Context(), req.Date, req.Entries, claims.ProfileID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDate):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidDate)
		case errors.Is(err, attendance.ErrNothingStaged):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrNothingToSave)
		case errors.Is(err, attendance.ErrUnknownStudent):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrUnknownStudent)
		case errors.Is(err, attendance.ErrInvalidStatus):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidStatus)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrSaveFailed)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"date":  req.Date,
		"saved": saved,
	})
}
