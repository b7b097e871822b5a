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

// ProgramService is the service surface the program controller needs.
type ProgramService interface {
	List(ctx context.Context, filters query.Filters, p query.Params) (*dto.ListResponse, error)
	Search(ctx context.Context, q string, p query.Params) (*dto.ListResponse, error)
	Add(ctx context.Context, req dto.AddProgramRequest) error
	Update(ctx context.Context, req dto.UpdateProgramRequest) error
	Delete(ctx context.Context, req dto.DeleteProgramRequest) error
}

// ProgramController handles the program endpoints.
type ProgramController struct {
	service ProgramService
}

// NewProgramController creates a new ProgramController.
func NewProgramController(service ProgramService) *ProgramController {
	return &ProgramController{service: service}
}

// List handles GET /api/programs.
func (ctl *ProgramController) List(c *gin.Context) {
	p, filters := helpers.ParseListParams(c)
	resp, err := ctl.service.List(c.Request.Context(), filters, p)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Search handles GET /api/programs/search.
func (ctl *ProgramController) Search(c *gin.Context) {
	q, p := helpers.ParseSearchParams(c)
	resp, err := ctl.service.Search(c.Request.Context(), q, p)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Add handles POST /api/programs/add.
func (ctl *ProgramController) Add(c *gin.Context) {
	var req dto.AddProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Message: "Invalid request body."})
		return
	}
	if err := ctl.service.Add(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MutationResponse{Success: true, Message: "Program added successfully."})
}

// Update handles PUT /api/programs/update.
func (ctl *ProgramController) Update(c *gin.Context) {
	var req dto.UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Message: "Invalid request body."})
		return
	}
	if err := ctl.service.Update(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Message: "Program updated successfully."})
}

// Delete handles DELETE /api/programs/delete.
func (ctl *ProgramController) Delete(c *gin.Context) {
	var req dto.DeleteProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Message: "Invalid request body."})
		return
	}
	if err := ctl.service.Delete(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Message: "Program deleted successfully."})
}
