package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zensolve/jobportal-admin/internal/dtos"
	"github.com/zensolve/jobportal-admin/internal/services"
)

type ContentHandler struct {
	Content *services.ContentService
	Users   *services.UserService
}

func NewContentHandler(content *services.ContentService, users *services.UserService) *ContentHandler {
	return &ContentHandler{Content: content, Users: users}
}

func (h *ContentHandler) GetContactSettings(c *gin.Context) {
	settings, err := h.Content.ContactSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *ContentHandler) SaveContactSettings(c *gin.Context) {
	var req dtos.ContactSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	settings, err := h.Content.SaveContactSettings(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *ContentHandler) ListTestimonials(c *gin.Context) {
	reviews, err := h.Content.Testimonials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ContentHandler) UpdateTestimonial(c *gin.Context) {
	var req dtos.TestimonialUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.Content.UpdateTestimonial(c.Request.Context(), c.Param("id"), req.Review); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.Content.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *ContentHandler) DeleteUser(c *gin.Context) {
	if err := h.Users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
