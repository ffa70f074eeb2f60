package service

import (
	"context"
	"log"

	"scholarlink/internal/domain"
	"scholarlink/internal/port"
)

// documentLinks fills StudentDocument.URL from the storage key on every read.
// Storage links may expire, so only the key is persisted.
type documentLinks struct {
	storage port.DocumentStorage
}

func (l documentLinks) document(ctx context.Context, doc *domain.StudentDocument) {
	if l.storage == nil || doc.StorageKey == "" {
		return
	}
	url, err := l.storage.URL(ctx, doc.StorageKey)
	if err != nil {
		log.Printf("documentLinks: could not build URL for %s: %v", doc.StorageKey, err)
		doc.URL = ""
		return
	}
	doc.URL = url
}

func (l documentLinks) student(ctx context.Context, student *domain.Student) {
	for i := range student.Documents {
		l.document(ctx, &student.Documents[i])
	}
}

func (l documentLinks) students(ctx context.Context, students []domain.Student) {
	for i := range students {
		l.student(ctx, &students[i])
	}
}
