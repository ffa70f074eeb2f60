package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarlink/internal/domain"
	"scholarlink/internal/repository/memory"
	"scholarlink/internal/repository/seed"
)

func TestStudents_LoadsDemoDataOnce(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStudentRepo()

	require.NoError(t, seed.Students(ctx, repo))
	require.NoError(t, seed.Students(ctx, repo))

	all, total, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "Harika R.", all[0].FullName)
	assert.Equal(t, "Rahul K.", all[1].FullName)

	harika, err := repo.GetByID(ctx, seed.HarikaID)
	require.NoError(t, err)
	assert.True(t, harika.IsVerified)
	assert.Equal(t, float64(86), harika.Percentage)
	require.Len(t, harika.Documents, 1)
	assert.Equal(t, domain.DocumentTypeMarksMemo, harika.Documents[0].Type)
	assert.True(t, harika.Documents[0].Verified)
}
