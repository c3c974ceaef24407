// internal/interfaces/http/handlers/upload.go
package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront/internal/config"
)

// UploadHandler handles file upload endpoints
type UploadHandler struct {
	config *config.Config
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		config: cfg,
	}
}

// UploadFile handles POST /upload
func (h *UploadHandler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No file provided",
		})
		return
	}

	if file.Size > h.config.Upload.MaxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("File exceeds maximum size of %d bytes", h.config.Upload.MaxSize),
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !h.isExtensionAllowed(ext) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File type %s is not allowed", ext),
		})
		return
	}

	// Store under a generated name so uploads can never collide or
	// traverse outside the upload directory
	name := uuid.New().String() + ext
	dest := filepath.Join(h.config.Upload.LocalPath, name)

	if err := os.MkdirAll(h.config.Upload.LocalPath, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to store file",
		})
		return
	}
	if err := c.SaveUploadedFile(file, dest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to store file",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url": h.config.Upload.BaseURL + "/" + name,
	})
}

func (h *UploadHandler) isExtensionAllowed(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, allowed := range h.config.Upload.AllowedExtensions {
		if strings.EqualFold(strings.TrimPrefix(allowed, "."), ext) {
			return true
		}
	}
	return false
}
