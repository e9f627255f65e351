package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zensolve/jobportal-admin/internal/services"
)

// MediaHandler fronts one upload panel; the router mounts one instance
// for logos and one for screenshots.
type MediaHandler struct {
	Panel *services.MediaService
	label string
}

func NewMediaHandler(panel *services.MediaService, label string) *MediaHandler {
	return &MediaHandler{Panel: panel, label: label}
}

func (h *MediaHandler) List(c *gin.Context) {
	assets, err := h.Panel.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

// Upload is the POST endpoint for the panel. The handler drains the
// progress sequence, logging milestones, and answers with the terminal
// result once the sequence ends.
func (h *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required: " + err.Error()})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file: " + err.Error()})
		return
	}
	defer f.Close()

	progress, err := h.Panel.Upload(c.Request.Context(), services.UploadInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Body:        f,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	lastLogged := 0.0
	for ev := range progress {
		if ev.Done {
			if ev.Err != nil {
				respondError(c, ev.Err)
				return
			}
			c.JSON(http.StatusCreated, ev.Asset)
			return
		}
		if ev.Percent-lastLogged >= 25 {
			lastLogged = ev.Percent
			log.Printf("⬆️ %s upload %.0f%%", h.label, ev.Percent)
		}
	}
}

func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.Panel.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
