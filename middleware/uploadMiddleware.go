package middleware

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// UploadedFileKey is the context key under which Upload stores the
// generated filename. Handlers read it with c.GetString.
const UploadedFileKey = "uploadedFile"

// Upload persists a single "file" multipart part to dir under a
// time-based token plus the original extension, and exposes the token to
// the downstream handler. Requests without a file part pass through with
// no value set. Any binary is accepted and written verbatim; there is no
// size or content-type check.
func Upload(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType := c.GetHeader("Content-Type")
		if !strings.HasPrefix(contentType, "multipart/form-data") {
			c.Next()
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			// No file part attached; the form fields still apply.
			c.Next()
			return
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to store uploaded file",
				"code":    "upload_failure",
				"details": err.Error(),
			})
			return
		}

		name := strconv.FormatInt(time.Now().UnixMilli(), 10) + filepath.Ext(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to store uploaded file",
				"code":    "upload_failure",
				"details": err.Error(),
			})
			return
		}

		c.Set(UploadedFileKey, name)
		c.Next()
	}
}
