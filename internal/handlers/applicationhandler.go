package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zensolve/jobportal-admin/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.Applications.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Accept is the PATCH /applications/:id/accept endpoint; responds with the
// refreshed list, matching the service's read-after-write behavior.
func (h *ApplicationHandler) Accept(c *gin.Context) {
	apps, err := h.Applications.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Reject(c *gin.Context) {
	apps, err := h.Applications.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Remove permanently deletes a resolved application.
func (h *ApplicationHandler) Remove(c *gin.Context) {
	if err := h.Applications.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Notices is the GET /applications/:id/notices endpoint: both templated
// mails with their compose links, ready for the staff to open.
func (h *ApplicationHandler) Notices(c *gin.Context) {
	app, err := h.Applications.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	accept, reject := h.Applications.Notices(*app)
	c.JSON(http.StatusOK, gin.H{"accept": accept, "reject": reject})
}

// Export is the GET /applications/export endpoint: the full roster as a
// spreadsheet download, every application exactly once.
func (h *ApplicationHandler) Export(c *gin.Context) {
	apps, err := h.Applications.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	workbook, err := services.RosterWorkbook(apps)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="applications.xlsx"`)
	if err := workbook.Write(c.Writer); err != nil {
		respondError(c, err)
	}
}
