package handlers

import (
	"mime"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zensolve/jobportal-admin/internal/repository"
)

// FileHandler serves blob content at the public URLs the blob store
// issues.
type FileHandler struct {
	Blobs repository.BlobStore
}

func NewFileHandler(blobs repository.BlobStore) *FileHandler {
	return &FileHandler{Blobs: blobs}
}

func (h *FileHandler) Download(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if contentType := mime.TypeByExtension(path.Ext(key)); contentType != "" {
		c.Header("Content-Type", contentType)
	}
	if err := h.Blobs.Download(c.Request.Context(), key, c.Writer); err != nil {
		respondError(c, err)
	}
}
