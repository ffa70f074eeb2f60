// Package seed loads the demo students shown on first start.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"scholarlink/internal/domain"
	"scholarlink/internal/port"
)

// Fixed IDs keep the demo students addressable across restarts.
var (
	HarikaID = uuid.MustParse("5c1f3a52-8d0e-4f7a-9b1e-0a6d2c4e8f01")
	RahulID  = uuid.MustParse("5c1f3a52-8d0e-4f7a-9b1e-0a6d2c4e8f02")
)

// DemoStudents returns the students preloaded into a fresh store.
func DemoStudents() []domain.Student {
	return []domain.Student{
		{
			ID:          HarikaID,
			FullName:    "Harika R.",
			Email:       "harika@example.com",
			Phone:       "9876543210",
			Course:      "B.Tech 2nd Year",
			Income:      40000,
			Location:    "Hyderabad, TS",
			Percentage:  86,
			Category:    domain.FamilyBgSingleParent,
			Age:         19,
			Description: "Aiming to become a software engineer to support my mother. Need funds for semester fees.",
			IsVerified:  true,
			PhotoURL:    "https://picsum.photos/200/200?random=1",
		},
		{
			ID:          RahulID,
			FullName:    "Rahul K.",
			Email:       "rahul@example.com",
			Phone:       "9876543211",
			Course:      "Diploma (Civil)",
			Income:      35000,
			Location:    "Warangal, TS",
			Percentage:  78,
			Category:    domain.FamilyBgVeryPoor,
			Age:         18,
			Description: "My father is a daily wage worker. I need support for buying books and bus pass.",
			IsVerified:  true,
			PhotoURL:    "https://picsum.photos/200/200?random=2",
		},
	}
}

// Students inserts the demo students with a verified marks memo each.
// Students that already exist are skipped.
func Students(ctx context.Context, repo port.StudentRepository) error {
	for _, s := range DemoStudents() {
		student := s
		if err := repo.Create(ctx, &student); err != nil {
			if errors.Is(err, domain.ErrDuplicateEmail) {
				continue
			}
			return fmt.Errorf("seeding %s: %w", student.Email, err)
		}
		if err := repo.AddDocument(ctx, &domain.StudentDocument{
			StudentID: student.ID,
			Type:      domain.DocumentTypeMarksMemo,
			URL:       "#",
			Verified:  true,
		}); err != nil {
			return fmt.Errorf("seeding memo for %s: %w", student.Email, err)
		}
		log.Printf("seed.Students: added %s", student.FullName)
	}
	return nil
}
