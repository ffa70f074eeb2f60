// Package memory keeps application state in process memory. It is the
// default store for demos and is safe for concurrent use.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"scholarlink/internal/domain"
	"scholarlink/internal/port"
)

type studentRepository struct {
	mu       sync.RWMutex
	order    []uuid.UUID
	students map[uuid.UUID]*domain.Student
	emails   map[string]uuid.UUID
}

// NewStudentRepo creates an empty in-memory StudentRepository.
func NewStudentRepo() port.StudentRepository {
	return &studentRepository{
		students: make(map[uuid.UUID]*domain.Student),
		emails:   make(map[string]uuid.UUID),
	}
}

func cloneStudent(s *domain.Student) *domain.Student {
	out := *s
	out.Documents = append([]domain.StudentDocument{}, s.Documents...)
	return &out
}

func (r *studentRepository) Create(_ context.Context, student *domain.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.emails[student.Email]; taken {
		return domain.ErrDuplicateEmail
	}
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	now := time.Now().UTC()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now

	r.students[student.ID] = cloneStudent(student)
	r.emails[student.Email] = student.ID
	r.order = append(r.order, student.ID)
	return nil
}

func (r *studentRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.students[id]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	return cloneStudent(s), nil
}

func (r *studentRepository) List(_ context.Context, offset, limit int) ([]domain.Student, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.order)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []domain.Student{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}

	out := make([]domain.Student, 0, end-offset)
	for _, id := range r.order[offset:end] {
		out = append(out, *cloneStudent(r.students[id]))
	}
	return out, total, nil
}

func (r *studentRepository) ListVerified(_ context.Context) ([]domain.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Student{}
	for _, id := range r.order {
		if s := r.students[id]; s.IsVerified {
			out = append(out, *cloneStudent(s))
		}
	}
	return out, nil
}

// Update replaces the stored profile. Documents are only changed through AddDocument.
func (r *studentRepository) Update(_ context.Context, student *domain.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.students[student.ID]
	if !ok {
		return domain.ErrStudentNotFound
	}
	if student.Email != existing.Email {
		if owner, taken := r.emails[student.Email]; taken && owner != student.ID {
			return domain.ErrDuplicateEmail
		}
		delete(r.emails, existing.Email)
		r.emails[student.Email] = student.ID
	}

	updated := cloneStudent(student)
	updated.Documents = existing.Documents
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	r.students[student.ID] = updated
	student.UpdatedAt = updated.UpdatedAt
	return nil
}

func (r *studentRepository) MarkVerified(_ context.Context, id uuid.UUID, percentage float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.students[id]
	if !ok {
		return domain.ErrStudentNotFound
	}
	s.IsVerified = true
	s.Percentage = percentage
	s.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *studentRepository) AddDocument(_ context.Context, doc *domain.StudentDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.students[doc.StudentID]
	if !ok {
		return domain.ErrStudentNotFound
	}
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	s.Documents = append(s.Documents, *doc)
	return nil
}
