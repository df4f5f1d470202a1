package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/campustrack/campustrack-backend/internal/middleware"
	"github.com/campustrack/campustrack-backend/internal/model"
	"github.com/campustrack/campustrack-backend/internal/repository"
	"github.com/campustrack/campustrack-backend/internal/response"
	"github.com/campustrack/campustrack-backend/internal/service"
	"github.com/campustrack/campustrack-backend/internal/validator"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// StudentHandler handles student endpoints.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// List godoc
// GET /api/v1/students?search=&status=&course=&year=&page=&per_page=
// Search matches name, code, and course case-insensitively; the remaining
// filters narrow the result set.
func (h *StudentHandler) List(c *gin.Context) {
	filter := repository.ListFilter{
		Search:  c.Query("search"),
		Status:  model.StudentStatus(c.Query("status")),
		Course:  c.Query("course"),
		Section: c.Query("section"),
	}
	if year := c.Query("year"); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil || y < 1 || y > 4 {
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
			return
		}
		filter.Year = y
	}

	page, perPage := paginationParams(c)
	students, total, err := h.studentService.ListPaginated(c.Request.Context(), filter, perPage, (page-1)*perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	totalPages := (total + perPage - 1) / perPage
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"students": students}, &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// Get godoc
// GET /api/v1/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// Create godoc
// POST /api/v1/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	collegeID, err := uuid.Parse(req.CollegeID)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	student := &model.Student{
		StudentCode: req.StudentCode,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		CollegeID:   collegeID,
		Course:      req.Course,
		Year:        req.Year,
		Section:     req.Section,
	}
	if claims := middleware.GetClaims(c); claims != nil {
		student.CreatedBy = &claims.ProfileID
	}

	if err := h.studentService.Create(c.Request.Context(), student); err != nil {
		if errors.Is(err, repository.ErrDuplicateStudentCode) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// Update godoc
// PUT /api/v1/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	collegeID, err := uuid.Parse(req.CollegeID)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	student.StudentCode = req.StudentCode
	student.FullName = req.FullName
	student.Email = req.Email
	student.Phone = req.Phone
	student.CollegeID = collegeID
	student.Course = req.Course
	student.Year = req.Year
	student.Section = req.Section
	student.Status = model.StudentStatus(req.Status)

	if err := h.studentService.Update(c.Request.Context(), student); err != nil {
		if errors.Is(err, repository.ErrDuplicateStudentCode) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// Delete godoc
// DELETE /api/v1/students/:id
// Attendance records cascade with the student row.
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}

func paginationParams(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
