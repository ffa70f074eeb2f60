// Package memory provides an in-process DocumentStorage for demos and tests.
package memory

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"scholarlink/internal/domain"
	"scholarlink/internal/port"
)

// URLPrefix prefixes the links handed out for stored documents.
const URLPrefix = "memory://documents/"

type object struct {
	data        []byte
	contentType string
}

// Store keeps documents in a map. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	objects map[string]object
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{objects: make(map[string]object)}
}

var _ port.DocumentStorage = (*Store)(nil)

func (s *Store) Put(_ context.Context, input port.PutObjectInput) (*port.StoredObject, error) {
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, fmt.Errorf("memory put %s: %w", input.Key, err)
	}

	s.mu.Lock()
	s.objects[input.Key] = object{data: data, contentType: input.ContentType}
	s.mu.Unlock()

	sum := md5.Sum(data)
	return &port.StoredObject{
		Key:      input.Key,
		Location: URLPrefix + input.Key,
		ETag:     hex.EncodeToString(sum[:]),
	}, nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

func (s *Store) URL(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	_, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return "", domain.ErrNotFound
	}
	return URLPrefix + key, nil
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
