package handler

import (
	"github.com/gin-gonic/gin"

	"scholarlink/internal/service"
)

// VerifyHandler exposes standalone marks memo verification.
type VerifyHandler struct {
	verificationService service.VerificationService
}

// NewVerifyHandler creates a new VerifyHandler.
func NewVerifyHandler(verificationService service.VerificationService) *VerifyHandler {
	return &VerifyHandler{verificationService: verificationService}
}

// Verify handles POST /api/v1/verify
// @Summary Verify a marks memo
// @Description Checks an uploaded marks memo for authenticity and extracts the percentage.
// @Description Verification failures are reported as a negative result, not as an error.
// @Tags verification
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Marks memo (PDF, JPG or PNG)"
// @Success 200 {object} Response{data=domain.VerificationResult} "Verification verdict"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Router /verify [post]
func (h *VerifyHandler) Verify(c *gin.Context) {
	upload, closeFile, ok := formUpload(c)
	if !ok {
		return
	}
	defer closeFile()

	result, err := h.verificationService.Verify(c.Request.Context(), upload)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
