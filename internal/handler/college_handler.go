package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campustrack/campustrack-backend/internal/model"
	"github.com/campustrack/campustrack-backend/internal/repository"
	"github.com/campustrack/campustrack-backend/internal/response"
	"github.com/campustrack/campustrack-backend/internal/service"
	"github.com/campustrack/campustrack-backend/internal/validator"
)

// CollegeHandler handles college endpoints.
type CollegeHandler struct {
	collegeService *service.CollegeService
}

// NewCollegeHandler creates a new CollegeHandler.
func NewCollegeHandler(collegeService *service.CollegeService) *CollegeHandler {
	return &CollegeHandler{collegeService: collegeService}
}

// List godoc
// GET /api/v1/colleges
func (h *CollegeHandler) List(c *gin.Context) {
	colleges, err := h.collegeService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"colleges": colleges})
}

// Get godoc
// GET /api/v1/colleges/:id
func (h *CollegeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	college, err := h.collegeService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"college": college})
}

// Create godoc
// POST /api/v1/colleges
func (h *CollegeHandler) Create(c *gin.Context) {
	var req model.CreateCollegeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	college := &model.College{Name: req.Name, Code: req.Code, Address: req.Address}
	if err := h.collegeService.Create(c.Request.Context(), college); err != nil {
		if errors.Is(err, repository.ErrDuplicateCollegeCode) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"college": college})
}

// Update godoc
// PUT /api/v1/colleges/:id
func (h *CollegeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateCollegeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	college, err := h.collegeService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	college.Name = req.Name
	college.Code = req.Code
	college.Address = req.Address
	if err := h.collegeService.Update(c.Request.Context(), college); err != nil {
		if errors.Is(err, repository.ErrDuplicateCollegeCode) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"college": college})
}

// Delete godoc
// DELETE /api/v1/colleges/:id
// Deletion is blocked while students or profiles still reference the row.
func (h *CollegeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.collegeService.Delete(c.Request.Context(), id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}
