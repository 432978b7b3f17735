package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/healthplus/healthplus/internal/model"
)

// MemStore is the in-memory Store used by tests. It deep-copies on both
// Load and Save so callers observe the same read-your-writes-only semantics
// as the file-backed store, and it counts saves so tests can assert on the
// two-write review/rating sequence.
type MemStore struct {
	mu    sync.Mutex
	doc   *model.Document
	saves int

	// FailSave, when set, makes the next Save return this error once.
	FailSave error
}

// NewMemStore seeds the store with doc; a nil doc starts empty.
func NewMemStore(doc *model.Document) *MemStore {
	if doc == nil {
		doc = &model.Document{}
	}
	doc.Normalize()
	return &MemStore{doc: doc}
}

func (s *MemStore) Load(_ context.Context) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDocument(s.doc)
}

func (s *MemStore) Save(_ context.Context, doc *model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave != nil {
		err := s.FailSave
		s.FailSave = nil
		return err
	}
	cp, err := copyDocument(doc)
	if err != nil {
		return err
	}
	s.doc = cp
	s.saves++
	return nil
}

// Saves reports how many successful saves have happened.
func (s *MemStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Document returns a copy of the current state for assertions.
func (s *MemStore) Document() *model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp, err := copyDocument(s.doc)
	if err != nil {
		panic(fmt.Sprintf("memstore copy: %v", err))
	}
	return cp
}

func copyDocument(doc *model.Document) (*model.Document, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var cp model.Document
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, err
	}
	cp.Normalize()
	return &cp, nil
}
