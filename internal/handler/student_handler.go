package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"scholarlink/internal/export"
	"scholarlink/internal/service"
)

// StudentHandler handles student registration, profile and document endpoints.
type StudentHandler struct {
	studentService service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Register handles POST /api/v1/students
// @Summary Register a student
// @Description Creates an unverified student profile with default category, age and photo.
// @Tags students
// @Accept json
// @Produce json
// @Param request body RegisterStudentRequest true "Registration form"
// @Success 201 {object} Response{data=domain.Student} "Student registered"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Email already registered"
// @Router /students [post]
func (h *StudentHandler) Register(c *gin.Context) {
	var input service.RegisterStudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	student, err := h.studentService.Register(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, student)
}

// List handles GET /api/v1/students
// @Summary List students
// @Tags students
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Student,meta=PagMeta} "List of students"
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	students, total, err := h.studentService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, students, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/students/:id
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID (UUID)"
// @Success 200 {object} Response{data=domain.Student} "Student profile"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Student not found"
// @Router /students/{id} [get]
func (h *StudentHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "student")
	if !ok {
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, student)
}

// Update handles PATCH /api/v1/students/:id
// @Summary Update a student profile
// @Description Partial update. Verification status and percentage are not editable.
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID (UUID)"
// @Param request body UpdateStudentRequest true "Fields to change"
// @Success 200 {object} Response{data=domain.Student} "Updated student"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Student not found"
// @Router /students/{id} [patch]
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "student")
	if !ok {
		return
	}

	var input service.UpdateStudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, student)
}

// SubmitMarksMemo handles POST /api/v1/students/:id/marks-memo
// @Summary Upload and verify a marks memo
// @Description Stores the memo and verifies it. A valid memo marks the student verified
// @Description and records the extracted percentage.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Student ID (UUID)"
// @Param file formData file true "Marks memo (PDF, JPG or PNG)"
// @Success 201 {object} Response{data=service.MarksMemoOutcome} "Memo recorded with verdict"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 404 {object} ErrorResponseBody "Student not found"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Router /students/{id}/marks-memo [post]
func (h *StudentHandler) SubmitMarksMemo(c *gin.Context) {
	id, ok := parseID(c, "student")
	if !ok {
		return
	}

	upload, closeFile, ok := formUpload(c)
	if !ok {
		return
	}
	defer closeFile()

	outcome, err := h.studentService.SubmitMarksMemo(c.Request.Context(), id, upload)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, outcome)
}

// Export handles GET /api/v1/students/export
// @Summary Export students
// @Description Downloads every student as CSV (default) or XLSX.
// @Tags students
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file "Student export"
// @Failure 400 {object} ErrorResponseBody "Unsupported format"
// @Router /students/export [get]
func (h *StudentHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.studentService.Export(c.Request.Context(), &buf, format); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+format.FileName()+`"`)
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
