package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"scholarlink/internal/domain"
	"scholarlink/internal/export"
	"scholarlink/internal/port"
)

// RegisterStudentInput is the DTO for the student registration form.
type RegisterStudentInput struct {
	FullName string  `json:"full_name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    string  `json:"phone" binding:"required"`
	Course   string  `json:"course" binding:"required"`
	Income   float64 `json:"income" binding:"gte=0"`
	Location string  `json:"location" binding:"required"`
}

// UpdateStudentInput is the DTO for a partial profile update.
// Verification status and percentage only change through a marks memo.
type UpdateStudentInput struct {
	FullName    *string  `json:"full_name"`
	Phone       *string  `json:"phone"`
	Course      *string  `json:"course"`
	Income      *float64 `json:"income" binding:"omitempty,gte=0"`
	Location    *string  `json:"location"`
	Category    *string  `json:"category"`
	Age         *int     `json:"age" binding:"omitempty,gte=1,lte=120"`
	Description *string  `json:"description"`
	PhotoURL    *string  `json:"photo_url" binding:"omitempty,url"`
}

func (in UpdateStudentInput) apply(s *domain.Student) {
	if in.FullName != nil {
		s.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Phone != nil {
		s.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Course != nil {
		s.Course = *in.Course
	}
	if in.Income != nil {
		s.Income = *in.Income
	}
	if in.Location != nil {
		s.Location = *in.Location
	}
	if in.Category != nil {
		s.Category = *in.Category
	}
	if in.Age != nil {
		s.Age = *in.Age
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.PhotoURL != nil {
		s.PhotoURL = *in.PhotoURL
	}
}

// MarksMemoOutcome is the result of submitting a marks memo for a student.
type MarksMemoOutcome struct {
	Student      *domain.Student           `json:"student"`
	Document     *domain.StudentDocument   `json:"document"`
	Verification domain.VerificationResult `json:"verification"`
}

// StudentService defines the student management contract.
type StudentService interface {
	Register(ctx context.Context, input RegisterStudentInput) (*domain.Student, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	List(ctx context.Context, offset, limit int) ([]domain.Student, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateStudentInput) (*domain.Student, error)
	SubmitMarksMemo(ctx context.Context, id uuid.UUID, input DocumentUpload) (*MarksMemoOutcome, error)
	Export(ctx context.Context, w io.Writer, format export.Format) error
}

const exportPageSize = 500

type studentService struct {
	repo    port.StudentRepository
	storage port.DocumentStorage
	links   documentLinks
	gateway port.VerificationGateway
	limits  UploadLimits
}

// NewStudentService creates a new StudentService implementation.
func NewStudentService(
	repo port.StudentRepository,
	storage port.DocumentStorage,
	gateway port.VerificationGateway,
	limits UploadLimits,
) StudentService {
	return &studentService{
		repo:    repo,
		storage: storage,
		links:   documentLinks{storage: storage},
		gateway: gateway,
		limits:  limits,
	}
}

func (s *studentService) Register(ctx context.Context, input RegisterStudentInput) (*domain.Student, error) {
	student := &domain.Student{
		ID:          uuid.New(),
		FullName:    strings.TrimSpace(input.FullName),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:       strings.TrimSpace(input.Phone),
		Course:      input.Course,
		Income:      input.Income,
		Location:    input.Location,
		Percentage:  0,
		Category:    domain.DefaultStudentCategory,
		Age:         domain.DefaultStudentAge,
		Description: "",
		IsVerified:  false,
		PhotoURL:    domain.DefaultStudentPhotoURL,
		Documents:   []domain.StudentDocument{},
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}
	log.Printf("studentService.Register: registered student %s (%s)", student.ID, student.Email)
	return student, nil
}

func (s *studentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.links.student(ctx, student)
	return student, nil
}

func (s *studentService) List(ctx context.Context, offset, limit int) ([]domain.Student, int, error) {
	students, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	s.links.students(ctx, students)
	return students, total, nil
}

func (s *studentService) Update(ctx context.Context, id uuid.UUID, input UpdateStudentInput) (*domain.Student, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	input.apply(student)
	if err := s.repo.Update(ctx, student); err != nil {
		return nil, err
	}
	s.links.student(ctx, student)
	return student, nil
}

// SubmitMarksMemo stores the memo, verifies it and records the verdict.
// A valid verdict marks the student verified with the extracted percentage.
// A negative verdict is recorded on the document and returned without error.
func (s *studentService) SubmitMarksMemo(ctx context.Context, id uuid.UUID, input DocumentUpload) (*MarksMemoOutcome, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := readDocument(input, s.limits)
	if err != nil {
		return nil, err
	}

	docID := uuid.New()
	key := fmt.Sprintf("students/%s/marks-memo/%s.%s", student.ID, docID, doc.fileType)

	log.Printf("studentService.SubmitMarksMemo: uploading %s (%s, %d bytes) for student %s",
		doc.fileName, doc.contentType, len(doc.data), student.ID)

	if _, err := s.storage.Put(ctx, port.PutObjectInput{
		Key:         key,
		Body:        doc.reader(),
		ContentType: doc.contentType,
		Size:        int64(len(doc.data)),
	}); err != nil {
		log.Printf("studentService.SubmitMarksMemo: storage upload failed for student %s: %v", student.ID, err)
		return nil, domain.ErrUploadFailed
	}

	result := s.gateway.Verify(ctx, doc.request())

	record := &domain.StudentDocument{
		ID:          docID,
		StudentID:   student.ID,
		Type:        domain.DocumentTypeMarksMemo,
		StorageKey:  key,
		ContentType: doc.contentType,
		Verified:    result.IsValid,
		Reason:      result.Reason,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.AddDocument(ctx, record); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			log.Printf("studentService.SubmitMarksMemo: could not remove orphaned object %s: %v", key, delErr)
		}
		return nil, fmt.Errorf("recording document: %w", err)
	}

	// Only the verdict fields are written so profile edits made during
	// verification survive.
	if result.IsValid {
		if err := s.repo.MarkVerified(ctx, student.ID, result.Percentage); err != nil {
			return nil, fmt.Errorf("marking student verified: %w", err)
		}
		log.Printf("studentService.SubmitMarksMemo: student %s verified at %.2f%%", student.ID, result.Percentage)
	} else {
		log.Printf("studentService.SubmitMarksMemo: memo rejected for student %s: %s", student.ID, result.Reason)
	}

	current, err := s.repo.GetByID(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	s.links.student(ctx, current)
	s.links.document(ctx, record)

	return &MarksMemoOutcome{
		Student:      current,
		Document:     record,
		Verification: result,
	}, nil
}

func (s *studentService) Export(ctx context.Context, w io.Writer, format export.Format) error {
	var all []domain.Student
	for offset := 0; ; offset += exportPageSize {
		page, total, err := s.repo.List(ctx, offset, exportPageSize)
		if err != nil {
			return err
		}
		all = append(all, page...)
		if len(page) == 0 || offset+len(page) >= total {
			break
		}
	}
	return export.WriteStudents(w, format, all)
}
