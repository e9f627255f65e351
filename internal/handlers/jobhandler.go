package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zensolve/jobportal-admin/internal/dtos"
	"github.com/zensolve/jobportal-admin/internal/services"
)

type JobHandler struct {
	Jobs         *services.JobService
	Applications *services.ApplicationService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService, apps *services.ApplicationService) *JobHandler {
	return &JobHandler{Jobs: jobs, Applications: apps}
}

// List is the GET /jobs endpoint
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.Jobs.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Create is the POST /jobs endpoint. Multipart because the optional
// company logo rides along with the form fields.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}

	var logo *services.LogoFile
	if file, err := c.FormFile("companyLogo"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read logo file: " + err.Error()})
			return
		}
		defer f.Close()
		logo = &services.LogoFile{Name: file.Filename, Size: file.Size, Reader: f}
	}

	job, err := h.Jobs.Create(c.Request.Context(), &req, logo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Delete is the DELETE /jobs/:id endpoint
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.Jobs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats is the GET /stats endpoint: the category pie chart and the
// applications-per-position bar chart, recomputed from the full lists.
func (h *JobHandler) Stats(c *gin.Context) {
	jobs, err := h.Jobs.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	apps, err := h.Applications.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"categoryDistribution":    services.CategoryDistribution(jobs),
		"applicationsPerPosition": services.ApplicationsPerPosition(apps),
	})
}
