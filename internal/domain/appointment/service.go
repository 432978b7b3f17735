// Package appointment implements booking: creation with denormalized
// doctor/patient names, status transitions, rescheduling, and cancellation
// by delete.
package appointment

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

var validStatuses = map[string]bool{
	model.AppointmentPending:   true,
	model.AppointmentConfirmed: true,
	model.AppointmentCancelled: true,
	model.AppointmentCompleted: true,
	model.AppointmentApproved:  true,
}

// ListFilter narrows ListAppointments; empty fields match everything.
type ListFilter struct {
	DoctorID  string
	PatientID string
}

func (s *Service) ListAppointments(ctx context.Context, f ListFilter) ([]model.Appointment, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to fetch appointments", err)
	}
	out := []model.Appointment{}
	for _, a := range doc.Appointments {
		if f.DoctorID != "" && a.DoctorID != f.DoctorID {
			continue
		}
		if f.PatientID != "" && a.PatientID != f.PatientID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to fetch appointment", err)
	}
	for i := range doc.Appointments {
		if doc.Appointments[i].ID == id {
			return &doc.Appointments[i], nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "Appointment not found")
}

// CreateAppointment books a slot. Doctor, patient, date, and time are
// required; the status defaults to pending. Doctor name, patient name, and
// specialty are copied from the referenced profiles at creation time and are
// not refreshed if those profiles change later.
func (s *Service) CreateAppointment(ctx context.Context, a *model.Appointment) (*model.Appointment, error) {
	if a.DoctorID == "" || a.PatientID == "" || a.Date == "" || a.Time == "" {
		return nil, apperr.New(apperr.Invalid, "Missing required fields")
	}
	if a.Status == "" {
		a.Status = model.AppointmentPending
	}
	if !validStatuses[a.Status] {
		return nil, apperr.New(apperr.Invalid, "Invalid appointment status")
	}
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to create appointment", err)
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	for _, d := range doc.Doctors {
		if d.ID == a.DoctorID {
			if a.DoctorName == "" {
				a.DoctorName = d.Name
			}
			if a.Specialty == "" {
				a.Specialty = d.Specialty
			}
			break
		}
	}
	if a.PatientName == "" {
		for _, p := range doc.Patients {
			if p.ID == a.PatientID {
				a.PatientName = p.Name
				break
			}
		}
	}
	doc.Appointments = append(doc.Appointments, *a)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to create appointment", err)
	}
	return a, nil
}

// UpdateAppointment applies a shallow merge. A reschedule (a patch carrying
// date or time without an explicit status) puts the appointment back to
// pending so the doctor re-approves the new slot.
func (s *Service) UpdateAppointment(ctx context.Context, id string, patch map[string]any) (*model.Appointment, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to update appointment", err)
	}
	for i := range doc.Appointments {
		if doc.Appointments[i].ID != id {
			continue
		}
		updated := doc.Appointments[i]
		if err := model.MergeInto(&updated, patch); err != nil {
			return nil, apperr.Wrap(apperr.Invalid, "Invalid update payload", err)
		}
		updated.ID = id

		_, hasDate := patch["date"]
		_, hasTime := patch["time"]
		_, hasStatus := patch["status"]
		if (hasDate || hasTime) && !hasStatus {
			updated.Status = model.AppointmentPending
		}
		if !validStatuses[updated.Status] {
			return nil, apperr.New(apperr.Invalid, "Invalid appointment status")
		}

		doc.Appointments[i] = updated
		if err := s.store.Save(ctx, doc); err != nil {
			return nil, apperr.Wrap(apperr.Storage, "Failed to update appointment", err)
		}
		return &doc.Appointments[i], nil
	}
	return nil, apperr.New(apperr.NotFound, "Appointment not found")
}

// DeleteAppointment removes the appointment and returns the removed record.
func (s *Service) DeleteAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to delete appointment", err)
	}
	for i := range doc.Appointments {
		if doc.Appointments[i].ID != id {
			continue
		}
		removed := doc.Appointments[i]
		doc.Appointments = append(doc.Appointments[:i], doc.Appointments[i+1:]...)
		if err := s.store.Save(ctx, doc); err != nil {
			return nil, apperr.Wrap(apperr.Storage, "Failed to delete appointment", err)
		}
		return &removed, nil
	}
	return nil, apperr.New(apperr.NotFound, "Appointment not found")
}
