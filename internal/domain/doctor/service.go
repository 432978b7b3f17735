// Package doctor implements provider profiles: listing, lookup, signup,
// and partial profile updates. Doctors are never deleted; their rating and
// review count are owned by the review domain's recompute.
package doctor

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthplus/healthplus/internal/model"
	"github.com/healthplus/healthplus/internal/platform/apperr"
	"github.com/healthplus/healthplus/internal/platform/store"
)

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to fetch doctors", err)
	}
	return doc.Doctors, nil
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*model.Doctor, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to fetch doctor", err)
	}
	for i := range doc.Doctors {
		if doc.Doctors[i].ID == id {
			return &doc.Doctors[i], nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "Doctor not found")
}

// CreateDoctor registers a new provider. Name and email are required;
// everything else is optional profile data. A caller-supplied ID is kept,
// otherwise one is generated.
func (s *Service) CreateDoctor(ctx context.Context, d *model.Doctor) (*model.Doctor, error) {
	if d.Name == "" || d.Email == "" {
		return nil, apperr.New(apperr.Invalid, "Missing required fields")
	}
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to create doctor", err)
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.Rating = 0
	d.ReviewCount = 0
	doc.Doctors = append(doc.Doctors, *d)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to create doctor", err)
	}
	return d, nil
}

// UpdateDoctor applies a shallow merge of patch onto the stored profile.
// The ID is immutable; a patch that tries to change it is overridden.
func (s *Service) UpdateDoctor(ctx context.Context, id string, patch map[string]any) (*model.Doctor, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to update doctor", err)
	}
	for i := range doc.Doctors {
		if doc.Doctors[i].ID != id {
			continue
		}
		updated := doc.Doctors[i]
		if err := model.MergeInto(&updated, patch); err != nil {
			return nil, apperr.Wrap(apperr.Invalid, "Invalid update payload", err)
		}
		updated.ID = id
		doc.Doctors[i] = updated
		if err := s.store.Save(ctx, doc); err != nil {
			return nil, apperr.Wrap(apperr.Storage, "Failed to update doctor", err)
		}
		return &doc.Doctors[i], nil
	}
	return nil, apperr.New(apperr.NotFound, "Doctor not found")
}
