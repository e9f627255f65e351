package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zensolve/jobportal-admin/internal/common"
)

// respondError maps coded service errors onto HTTP statuses. Anything
// uncoded is a plain 500.
func respondError(c *gin.Context, err error) {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	body := gin.H{"error": appErr.Message, "code": appErr.Code}
	if len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}
	c.JSON(common.HTTPStatus(err), body)
}

// HealthCheck is the liveness probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
