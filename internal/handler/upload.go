package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scholarlink/internal/service"
)

// formUpload opens the multipart "file" field. The returned closer must be
// called once the upload has been consumed. On failure a 400 is written.
func formUpload(c *gin.Context) (service.DocumentUpload, func(), bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return service.DocumentUpload{}, nil, false
	}
	return service.DocumentUpload{
		File:     file,
		FileName: header.Filename,
		Size:     header.Size,
	}, func() { _ = file.Close() }, true
}
