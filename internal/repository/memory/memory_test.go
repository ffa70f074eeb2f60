package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarlink/internal/domain"
	"scholarlink/internal/repository/memory"
)

func TestStudentRepo_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepo()
	s := &domain.Student{FullName: "Priya", Email: "priya@example.com"}

	require.NoError(t, repo.Create(ctx, s))
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.False(t, s.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Priya", got.FullName)

	// Mutating a returned copy must not leak into the store.
	got.FullName = "changed"
	again, _ := repo.GetByID(ctx, s.ID)
	assert.Equal(t, "Priya", again.FullName)

	got.IsVerified = true
	got.Percentage = 90
	require.NoError(t, repo.Update(ctx, got))
	again, _ = repo.GetByID(ctx, s.ID)
	assert.True(t, again.IsVerified)
	assert.Equal(t, float64(90), again.Percentage)
}

func TestStudentRepo_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepo()
	require.NoError(t, repo.Create(ctx, &domain.Student{Email: "a@example.com"}))

	err := repo.Create(ctx, &domain.Student{Email: "a@example.com"})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestStudentRepo_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepo()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)

	err = repo.Update(ctx, &domain.Student{ID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)

	err = repo.AddDocument(ctx, &domain.StudentDocument{StudentID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)
}

func TestStudentRepo_ListPaginatesInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepo()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Student{
			FullName: fmt.Sprintf("s%d", i),
			Email:    fmt.Sprintf("s%d@example.com", i),
		}))
	}

	page, total, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "s1", page[0].FullName)
	assert.Equal(t, "s2", page[1].FullName)

	page, _, err = repo.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestStudentRepo_ListVerifiedAndDocuments(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepo()
	verified := &domain.Student{Email: "v@example.com", IsVerified: true}
	pending := &domain.Student{Email: "p@example.com"}
	require.NoError(t, repo.Create(ctx, verified))
	require.NoError(t, repo.Create(ctx, pending))
	require.NoError(t, repo.AddDocument(ctx, &domain.StudentDocument{StudentID: verified.ID, Type: domain.DocumentTypeMarksMemo}))

	out, err := repo.ListVerified(ctx)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, verified.ID, out[0].ID)
	require.Len(t, out[0].Documents, 1)
	assert.NotEqual(t, uuid.Nil, out[0].Documents[0].ID)
}

func TestStudentRepo_UpdateKeepsDocuments(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepo()
	s := &domain.Student{Email: "d@example.com"}
	require.NoError(t, repo.Create(ctx, s))
	require.NoError(t, repo.AddDocument(ctx, &domain.StudentDocument{StudentID: s.ID}))

	s.Description = "updated"
	s.Documents = nil
	require.NoError(t, repo.Update(ctx, s))

	got, _ := repo.GetByID(ctx, s.ID)
	assert.Equal(t, "updated", got.Description)
	assert.Len(t, got.Documents, 1)
}

func TestStudentRepo_MarkVerifiedKeepsProfile(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepo()
	s := &domain.Student{FullName: "Rahul K.", Email: "rahul@example.com", Description: "Diploma fees"}
	require.NoError(t, repo.Create(ctx, s))

	require.NoError(t, repo.MarkVerified(ctx, s.ID, 78.5))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, got.IsVerified)
	assert.Equal(t, 78.5, got.Percentage)
	assert.Equal(t, "Diploma fees", got.Description)
	assert.ErrorIs(t, repo.MarkVerified(ctx, uuid.New(), 50), domain.ErrStudentNotFound)
}

func TestStudentRepo_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepo()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(ctx, &domain.Student{Email: fmt.Sprintf("c%d@example.com", i)})
			_, _, _ = repo.List(ctx, 0, 10)
		}(i)
	}
	wg.Wait()

	_, total, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 50, total)
}

func TestDonorRepo_Preferences(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDonorRepo()
	d := &domain.Donor{Name: "Anita", Email: "anita@example.com"}
	require.NoError(t, repo.Create(ctx, d))

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Preferences)

	prefs := domain.DonorPreferences{Budget: 1000, GenderPref: domain.GenderAny}
	require.NoError(t, repo.SetPreferences(ctx, d.ID, prefs))

	got, err = repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Preferences)
	assert.Equal(t, prefs, *got.Preferences)

	assert.ErrorIs(t, repo.SetPreferences(ctx, uuid.New(), prefs), domain.ErrDonorNotFound)
	assert.ErrorIs(t, repo.Create(ctx, &domain.Donor{Email: "anita@example.com"}), domain.ErrDuplicateEmail)
}

func TestSessionRepo_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSessionRepo()

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Put(ctx, &domain.Session{ID: "s1", Role: domain.RoleStudent}))
	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, got.Role)

	require.NoError(t, repo.Delete(ctx, "s1"))
	assert.ErrorIs(t, repo.Delete(ctx, "s1"), domain.ErrNotFound)
}
