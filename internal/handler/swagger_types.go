package handler

import (
	"scholarlink/internal/domain"
)

// Swagger type definitions for API documentation.
// These mirror the service DTOs with examples for the generated docs.

// --- Request Types ---

// RegisterStudentRequest represents the student registration body.
type RegisterStudentRequest struct {
	FullName string  `json:"full_name" binding:"required" example:"Harika R."`
	Email    string  `json:"email" binding:"required" example:"harika@example.com"`
	Phone    string  `json:"phone" binding:"required" example:"9876543210"`
	Course   string  `json:"course" binding:"required" example:"B.Tech 2nd Year"`
	Income   float64 `json:"income" example:"40000"`
	Location string  `json:"location" binding:"required" example:"Hyderabad, TS"`
}

// UpdateStudentRequest represents the partial student update body.
type UpdateStudentRequest struct {
	FullName    *string  `json:"full_name" example:"Harika Reddy"`
	Phone       *string  `json:"phone" example:"9876543210"`
	Course      *string  `json:"course" example:"B.Tech 3rd Year"`
	Income      *float64 `json:"income" example:"42000"`
	Location    *string  `json:"location" example:"Hyderabad, TS"`
	Category    *string  `json:"category" example:"Single Parent"`
	Age         *int     `json:"age" example:"20"`
	Description *string  `json:"description" example:"Need funds for semester fees."`
	PhotoURL    *string  `json:"photo_url" example:"https://picsum.photos/200/200"`
}

// RegisterDonorRequest represents the donor registration body.
type RegisterDonorRequest struct {
	Name  string `json:"name" binding:"required" example:"Anita Rao"`
	Email string `json:"email" binding:"required" example:"anita@example.com"`
}

// SetPreferencesRequest represents the donor preference form.
type SetPreferencesRequest struct {
	Budget         float64 `json:"budget" example:"50000"`
	GenderPref     string  `json:"gender_pref" binding:"required" example:"Female" enums:"Any,Female,Male"`
	FamilyBgPref   string  `json:"family_bg_pref" binding:"required" example:"Single Parent" enums:"Any,Very Poor,Single Parent,Orphan"`
	StudyLevelPref string  `json:"study_level_pref" binding:"required" example:"Engineering" enums:"Any,School,Intermediate,Degree,Engineering"`
	LocationPref   string  `json:"location_pref" example:"Hyderabad"`
}

// SetRoleRequest represents the role choice body.
type SetRoleRequest struct {
	Role string `json:"role" binding:"required" example:"donor" enums:"student,donor"`
}

// --- Response Types ---

// RoleResponse reports the role of the calling session.
type RoleResponse struct {
	SessionID string          `json:"session_id" example:"2f0c6f0e-7f5a-4c1e-9d59-5d0f3b8f1a11"`
	Role      domain.UserRole `json:"role" example:"student"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Verifier string `json:"verifier,omitempty" example:"gemini"`
	Error    string `json:"error,omitempty" example:"database not reachable"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
