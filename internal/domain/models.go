package domain

import (
	"time"

	"github.com/google/uuid"
)

// Student is a sponsorship applicant.
type Student struct {
	ID          uuid.UUID         `db:"id" json:"id"`
	FullName    string            `db:"full_name" json:"full_name"`
	Email       string            `db:"email" json:"email"`
	Phone       string            `db:"phone" json:"phone"`
	Course      string            `db:"course" json:"course"`
	Income      float64           `db:"income" json:"income"`
	Location    string            `db:"location" json:"location"`
	Percentage  float64           `db:"percentage" json:"percentage"`
	Category    string            `db:"category" json:"category"`
	Age         int               `db:"age" json:"age"`
	Description string            `db:"description" json:"description"`
	IsVerified  bool              `db:"is_verified" json:"is_verified"`
	PhotoURL    string            `db:"photo_url" json:"photo_url"`
	Documents   []StudentDocument `db:"-" json:"documents"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updated_at"`
}

// StudentDocument is an uploaded document attached to a student.
type StudentDocument struct {
	ID          uuid.UUID `db:"id" json:"id"`
	StudentID   uuid.UUID `db:"student_id" json:"student_id"`
	Type        string    `db:"type" json:"type"`
	URL         string    `db:"url" json:"url"`
	StorageKey  string    `db:"storage_key" json:"-"`
	ContentType string    `db:"content_type" json:"content_type"`
	Verified    bool      `db:"verified" json:"verified"`
	Reason      string    `db:"reason" json:"reason"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// DonorPreferences are the filter criteria a donor sets.
type DonorPreferences struct {
	Budget         float64    `db:"budget" json:"budget"`
	GenderPref     GenderPref `db:"gender_pref" json:"gender_pref"`
	FamilyBgPref   string     `db:"family_bg_pref" json:"family_bg_pref"`
	StudyLevelPref string     `db:"study_level_pref" json:"study_level_pref"`
	LocationPref   string     `db:"location_pref" json:"location_pref"`
}

// Donor is a sponsor browsing students.
type Donor struct {
	ID          uuid.UUID         `db:"id" json:"id"`
	Name        string            `db:"name" json:"name"`
	Email       string            `db:"email" json:"email"`
	Preferences *DonorPreferences `db:"-" json:"preferences,omitempty"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updated_at"`
}

// Session records the role chosen by one visitor.
type Session struct {
	ID        string    `db:"id" json:"id"`
	Role      UserRole  `db:"role" json:"role"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
