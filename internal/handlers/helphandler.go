package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zensolve/jobportal-admin/internal/services"
)

type HelpHandler struct {
	Helpdesk *services.HelpdeskService
}

func NewHelpHandler(helpdesk *services.HelpdeskService) *HelpHandler {
	return &HelpHandler{Helpdesk: helpdesk}
}

func (h *HelpHandler) ListMessages(c *gin.Context) {
	messages, err := h.Helpdesk.Messages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Interstitial returns the message awaiting attention, or 204 when there
// is nothing to show.
func (h *HelpHandler) Interstitial(c *gin.Context) {
	msg, ok := h.Helpdesk.Interstitial()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *HelpHandler) Snooze(c *gin.Context) {
	h.Helpdesk.Snooze()
	c.Status(http.StatusNoContent)
}

// Accept clears the interstitial and returns the contact shortcuts for
// the message it was showing.
func (h *HelpHandler) Accept(c *gin.Context) {
	shortcuts, ok := h.Helpdesk.Accept()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, shortcuts)
}

// Resolve deletes the message permanently.
func (h *HelpHandler) Resolve(c *gin.Context) {
	if err := h.Helpdesk.Resolve(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
