package service

import (
	"context"

	"scholarlink/internal/domain"
	"scholarlink/internal/port"
)

// Matcher picks the students a donor is shown.
type Matcher interface {
	Match(ctx context.Context, prefs domain.DonorPreferences) ([]domain.Student, error)
}

// PlaceholderMatcher shows every verified student. Preferences are accepted
// but not used for ranking or filtering yet.
type PlaceholderMatcher struct {
	students port.StudentRepository
}

// NewPlaceholderMatcher creates a PlaceholderMatcher over the student repository.
func NewPlaceholderMatcher(students port.StudentRepository) *PlaceholderMatcher {
	return &PlaceholderMatcher{students: students}
}

func (m *PlaceholderMatcher) Match(ctx context.Context, _ domain.DonorPreferences) ([]domain.Student, error) {
	students, err := m.students.ListVerified(ctx)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []domain.Student{}
	}
	return students, nil
}
