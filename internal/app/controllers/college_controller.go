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

// CollegeService is the service surface the college controller needs.
type CollegeService interface {
	List(ctx context.Context, filters query.Filters, p query.Params) (*dto.ListResponse, error)
	Search(ctx context.Context, q string, p query.Params) (*dto.ListResponse, error)
	Add(ctx context.Context, req dto.AddCollegeRequest) error
	Update(ctx context.Context, req dto.UpdateCollegeRequest) error
	Delete(ctx context.Context, req dto.DeleteCollegeRequest) error
}

// CollegeController handles the college endpoints.
type CollegeController struct {
	service CollegeService
}

// NewCollegeController creates a new CollegeController.
func NewCollegeController(service CollegeService) *CollegeController {
	return &CollegeController{service: service}
}

// List handles GET /api/colleges.
func (ctl *CollegeController) List(c *gin.Context) {
	p, filters := helpers.ParseListParams(c)
	resp, err := ctl.service.List(c.Request.Context(), filters, p)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Search handles GET /api/colleges/search.
func (ctl *CollegeController) Search(c *gin.Context) {
	q, p := helpers.ParseSearchParams(c)
	resp, err := ctl.service.Search(c.Request.Context(), q, p)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Add handles POST /api/colleges/add.
func (ctl *CollegeController) Add(c *gin.Context) {
	var req dto.AddCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Message: "Invalid request body."})
		return
	}
	if err := ctl.service.Add(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MutationResponse{Success: true, Message: "College added successfully."})
}

// Update handles PUT /api/colleges/update.
func (ctl *CollegeController) Update(c *gin.Context) {
	var req dto.UpdateCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Message: "Invalid request body."})
		return
	}
	if err := ctl.service.Update(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Message: "College updated successfully."})
}

// Delete handles DELETE /api/colleges/delete.
func (ctl *CollegeController) Delete(c *gin.Context) {
	var req dto.DeleteCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Message: "Invalid request body."})
		return
	}
	if err := ctl.service.Delete(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Message: "College deleted successfully."})
}
