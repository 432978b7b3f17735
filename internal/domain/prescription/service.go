// Package prescription implements the medicine records a doctor writes
// against an appointment. Unlike appointments, prescriptions have a full
// lifecycle including delete.
package prescription

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthplus/healthplus/internal/model"
	"github.com/healthplus/healthplus/internal/platform/apperr"
	"github.com/healthplus/healthplus/internal/platform/store"
)

type Service struct {
	store store.Store

	// now is swapped out by tests for a fixed clock.
	now func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// ListFilter narrows ListPrescriptions; empty fields match everything.
type ListFilter struct {
	DoctorID      string
	PatientID     string
	AppointmentID string
}

func (s *Service) ListPrescriptions(ctx context.Context, f ListFilter) ([]model.Prescription, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to fetch prescriptions", err)
	}
	out := []model.Prescription{}
	for _, p := range doc.Prescriptions {
		if f.DoctorID != "" && p.DoctorID != f.DoctorID {
			continue
		}
		if f.PatientID != "" && p.PatientID != f.PatientID {
			continue
		}
		if f.AppointmentID != "" && p.AppointmentID != f.AppointmentID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) GetPrescription(ctx context.Context, id string) (*model.Prescription, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to fetch prescription", err)
	}
	for i := range doc.Prescriptions {
		if doc.Prescriptions[i].ID == id {
			return &doc.Prescriptions[i], nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "Prescription not found")
}

// CreatePrescription requires a doctor, a patient, and at least one
// medicine. The date defaults to the creation time.
func (s *Service) CreatePrescription(ctx context.Context, p *model.Prescription) (*model.Prescription, error) {
	if p.DoctorID == "" || p.PatientID == "" || len(p.Medicines) == 0 {
		return nil, apperr.New(apperr.Invalid, "Missing required fields")
	}
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to create prescription", err)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Date == "" {
		p.Date = s.now().UTC().Format(time.RFC3339)
	}
	doc.Prescriptions = append(doc.Prescriptions, *p)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to create prescription", err)
	}
	return p, nil
}

func (s *Service) UpdatePrescription(ctx context.Context, id string, patch map[string]any) (*model.Prescription, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to update prescription", err)
	}
	for i := range doc.Prescriptions {
		if doc.Prescriptions[i].ID != id {
			continue
		}
		updated := doc.Prescriptions[i]
		if err := model.MergeInto(&updated, patch); err != nil {
			return nil, apperr.Wrap(apperr.Invalid, "Invalid update payload", err)
		}
		updated.ID = id
		if len(updated.Medicines) == 0 {
			return nil, apperr.New(apperr.Invalid, "Missing required fields")
		}
		doc.Prescriptions[i] = updated
		if err := s.store.Save(ctx, doc); err != nil {
			return nil, apperr.Wrap(apperr.Storage, "Failed to update prescription", err)
		}
		return &doc.Prescriptions[i], nil
	}
	return nil, apperr.New(apperr.NotFound, "Prescription not found")
}

// DeletePrescription removes the prescription and returns the removed record.
func (s *Service) DeletePrescription(ctx context.Context, id string) (*model.Prescription, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to delete prescription", err)
	}
	for i := range doc.Prescriptions {
		if doc.Prescriptions[i].ID != id {
			continue
		}
		removed := doc.Prescriptions[i]
		doc.Prescriptions = append(doc.Prescriptions[:i], doc.Prescriptions[i+1:]...)
		if err := s.store.Save(ctx, doc); err != nil {
			return nil, apperr.Wrap(apperr.Storage, "Failed to delete prescription", err)
		}
		return &removed, nil
	}
	return nil, apperr.New(apperr.NotFound, "Prescription not found")
}
