package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmcabral/registra/internal/app/models/dto"
	"github.com/jmcabral/registra/internal/app/query"
	"github.com/jmcabral/registra/internal/middleware"
	"github.com/jmcabral/registra/internal/pkg/helpers"
)

// StudentService is the service surface the student controller needs.
type StudentService interface {
	List(ctx context.Context, filters query.Filters, p query.Params) (*dto.ListResponse, error)
	Search(ctx context.Context, q string, p query.Params) (*dto.ListResponse, error)
	Add(ctx context.Context, req dto.AddStudentRequest) error
	Update(ctx context.Context, req dto.UpdateStudentRequest) error
	Delete(ctx context.Context, req dto.DeleteStudentRequest) error
}

// StudentController handles the student endpoints.
type StudentController struct {
	service StudentService
}

// NewStudentController creates a new StudentController.
func NewStudentController(service StudentService) *StudentController {
	return &StudentController{service: service}
}

// List handles GET /api/students.
func (ctl *StudentController) List(c *gin.Context) {
	p, filters := helpers.ParseListParams(c)
	resp, err := ctl.service.List(c.Request.Context(), filters, p)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Search handles GET /api/students/search.
func (ctl *StudentController) Search(c *gin.Context) {
	q, p := helpers.ParseSearchParams(c)
	resp, err := ctl.service.Search(c.Request.Context(), q, p)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Add handles POST /api/students/add.
func (ctl *StudentController) Add(c *gin.Context) {
	var req dto.AddStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Message: "Invalid request body."})
		return
	}
	if err := ctl.service.Add(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MutationResponse{Success: true, Message: "Student added successfully."})
}

// Update handles PUT /api/students/update.
func (ctl *StudentController) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Message: "Invalid request body."})
		return
	}
	if err := ctl.service.Update(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Message: "Student record updated successfully."})
}

// Delete handles DELETE /api/students/delete.
func (ctl *StudentController) Delete(c *gin.Context) {
	var req dto.DeleteStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Message: "Invalid request body."})
		return
	}
	if err := ctl.service.Delete(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Message: "Student deleted successfully."})
}
