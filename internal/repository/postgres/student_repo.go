package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"scholarlink/internal/domain"
	"scholarlink/internal/port"
)

const studentColumns = `id, full_name, email, phone, course, income, location, percentage,
	category, age, description, is_verified, photo_url, created_at, updated_at`

type studentRepo struct {
	db *sqlx.DB
}

// NewStudentRepo creates a new PostgreSQL-backed StudentRepository.
func NewStudentRepo(db *sqlx.DB) port.StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *domain.Student) error {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	now := time.Now().UTC()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now

	query := `INSERT INTO students (` + studentColumns + `)
		VALUES (:id, :full_name, :email, :phone, :course, :income, :location, :percentage,
			:category, :age, :description, :is_verified, :photo_url, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		if isUniqueViolation(err, "email") {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("studentRepo.Create: %w", err)
	}
	return nil
}

func (r *studentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	var student domain.Student
	err := r.db.GetContext(ctx, &student, "SELECT "+studentColumns+" FROM students WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("studentRepo.GetByID: %w", err)
	}

	docs, err := r.documentsFor(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	student.Documents = docs[id]
	if student.Documents == nil {
		student.Documents = []domain.StudentDocument{}
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, offset, limit int) ([]domain.Student, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM students"); err != nil {
		return nil, 0, fmt.Errorf("studentRepo.List count: %w", err)
	}

	var students []domain.Student
	query := "SELECT " + studentColumns + " FROM students ORDER BY created_at, id OFFSET $1"
	args := []interface{}{offset}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, 0, fmt.Errorf("studentRepo.List: %w", err)
	}
	if err := r.attachDocuments(ctx, students); err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (r *studentRepo) ListVerified(ctx context.Context) ([]domain.Student, error) {
	var students []domain.Student
	err := r.db.SelectContext(ctx, &students,
		"SELECT "+studentColumns+" FROM students WHERE is_verified ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("studentRepo.ListVerified: %w", err)
	}
	if err := r.attachDocuments(ctx, students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepo) Update(ctx context.Context, student *domain.Student) error {
	student.UpdatedAt = time.Now().UTC()
	query := `UPDATE students SET full_name = :full_name, email = :email, phone = :phone,
		course = :course, income = :income, location = :location, percentage = :percentage,
		category = :category, age = :age, description = :description, is_verified = :is_verified,
		photo_url = :photo_url, updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		if isUniqueViolation(err, "email") {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("studentRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (r *studentRepo) MarkVerified(ctx context.Context, id uuid.UUID, percentage float64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE students SET is_verified = TRUE, percentage = $2, updated_at = $3 WHERE id = $1`,
		id, percentage, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("studentRepo.MarkVerified: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (r *studentRepo) AddDocument(ctx context.Context, doc *domain.StudentDocument) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO student_documents
		(id, student_id, type, url, storage_key, content_type, verified, reason, created_at)
		VALUES (:id, :student_id, :type, :url, :storage_key, :content_type, :verified, :reason, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, doc); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrStudentNotFound
		}
		return fmt.Errorf("studentRepo.AddDocument: %w", err)
	}
	return nil
}

func (r *studentRepo) attachDocuments(ctx context.Context, students []domain.Student) error {
	if len(students) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(students))
	for i := range students {
		ids[i] = students[i].ID
	}
	docs, err := r.documentsFor(ctx, ids)
	if err != nil {
		return err
	}
	for i := range students {
		students[i].Documents = docs[students[i].ID]
		if students[i].Documents == nil {
			students[i].Documents = []domain.StudentDocument{}
		}
	}
	return nil
}

func (r *studentRepo) documentsFor(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.StudentDocument, error) {
	query, args, err := sqlx.In(`SELECT id, student_id, type, url, storage_key, content_type, verified, reason, created_at
		FROM student_documents WHERE student_id IN (?) ORDER BY created_at, id`, ids)
	if err != nil {
		return nil, fmt.Errorf("studentRepo.documentsFor: %w", err)
	}

	var docs []domain.StudentDocument
	if err := r.db.SelectContext(ctx, &docs, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("studentRepo.documentsFor: %w", err)
	}

	out := make(map[uuid.UUID][]domain.StudentDocument, len(ids))
	for _, d := range docs {
		out[d.StudentID] = append(out[d.StudentID], d)
	}
	return out, nil
}
