package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scholarlink/internal/service"
)

// DonorHandler handles donor registration, preferences and matches.
type DonorHandler struct {
	donorService service.DonorService
}

// NewDonorHandler creates a new DonorHandler.
func NewDonorHandler(donorService service.DonorService) *DonorHandler {
	return &DonorHandler{donorService: donorService}
}

// Register handles POST /api/v1/donors
// @Summary Register a donor
// @Tags donors
// @Accept json
// @Produce json
// @Param request body RegisterDonorRequest true "Donor details"
// @Success 201 {object} Response{data=domain.Donor} "Donor registered"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Email already registered"
// @Router /donors [post]
func (h *DonorHandler) Register(c *gin.Context) {
	var input service.RegisterDonorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	donor, err := h.donorService.Register(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, donor)
}

// GetByID handles GET /api/v1/donors/:id
// @Summary Get a donor
// @Tags donors
// @Produce json
// @Param id path string true "Donor ID (UUID)"
// @Success 200 {object} Response{data=domain.Donor} "Donor"
// @Failure 404 {object} ErrorResponseBody "Donor not found"
// @Router /donors/{id} [get]
func (h *DonorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "donor")
	if !ok {
		return
	}

	donor, err := h.donorService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, donor)
}

// SetPreferences handles PUT /api/v1/donors/:id/preferences
// @Summary Save donor preferences
// @Tags donors
// @Accept json
// @Produce json
// @Param id path string true "Donor ID (UUID)"
// @Param request body SetPreferencesRequest true "Preferences"
// @Success 200 {object} Response{data=domain.DonorPreferences} "Saved preferences"
// @Failure 400 {object} ErrorResponseBody "Invalid preferences"
// @Failure 404 {object} ErrorResponseBody "Donor not found"
// @Router /donors/{id}/preferences [put]
func (h *DonorHandler) SetPreferences(c *gin.Context) {
	id, ok := parseID(c, "donor")
	if !ok {
		return
	}

	var input service.SetPreferencesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	prefs, err := h.donorService.SetPreferences(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, prefs)
}

// GetPreferences handles GET /api/v1/donors/:id/preferences
// @Summary Get donor preferences
// @Tags donors
// @Produce json
// @Param id path string true "Donor ID (UUID)"
// @Success 200 {object} Response{data=domain.DonorPreferences} "Preferences"
// @Failure 404 {object} ErrorResponseBody "Donor not found"
// @Failure 409 {object} ErrorResponseBody "Preferences not set"
// @Router /donors/{id}/preferences [get]
func (h *DonorHandler) GetPreferences(c *gin.Context) {
	id, ok := parseID(c, "donor")
	if !ok {
		return
	}

	prefs, err := h.donorService.GetPreferences(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, prefs)
}

// Matches handles GET /api/v1/donors/:id/matches
// @Summary List matching students
// @Description Returns verified students. Preferences are required but not yet used for ranking.
// @Tags donors
// @Produce json
// @Param id path string true "Donor ID (UUID)"
// @Success 200 {object} Response{data=[]domain.Student} "Matching students"
// @Failure 404 {object} ErrorResponseBody "Donor not found"
// @Failure 409 {object} ErrorResponseBody "Preferences not set"
// @Router /donors/{id}/matches [get]
func (h *DonorHandler) Matches(c *gin.Context) {
	id, ok := parseID(c, "donor")
	if !ok {
		return
	}

	students, err := h.donorService.Matches(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, students)
}
