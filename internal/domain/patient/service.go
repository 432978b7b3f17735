// Package patient implements patient profiles and the medical-history view,
// which merges a patient's appointments and prescriptions into one
// chronological feed. Patients are never deleted.
package patient

import (
	"context"
	"sort"
	"time"

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

func (s *Service) ListPatients(ctx context.Context) ([]model.Patient, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to fetch patients", err)
	}
	return doc.Patients, nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*model.Patient, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to fetch patient", err)
	}
	for i := range doc.Patients {
		if doc.Patients[i].ID == id {
			return &doc.Patients[i], nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "Patient not found")
}

func (s *Service) CreatePatient(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	if p.Name == "" || p.Email == "" {
		return nil, apperr.New(apperr.Invalid, "Missing required fields")
	}
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to create patient", err)
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	doc.Patients = append(doc.Patients, *p)
	if err := s.store.Save(ctx, doc); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to create patient", err)
	}
	return p, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id string, patch map[string]any) (*model.Patient, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to update patient", err)
	}
	for i := range doc.Patients {
		if doc.Patients[i].ID != id {
			continue
		}
		updated := doc.Patients[i]
		if err := model.MergeInto(&updated, patch); err != nil {
			return nil, apperr.Wrap(apperr.Invalid, "Invalid update payload", err)
		}
		updated.ID = id
		doc.Patients[i] = updated
		if err := s.store.Save(ctx, doc); err != nil {
			return nil, apperr.Wrap(apperr.Storage, "Failed to update patient", err)
		}
		return &doc.Patients[i], nil
	}
	return nil, apperr.New(apperr.NotFound, "Patient not found")
}

// HistoryEntry is one row of the medical-history feed. Appointment entries
// carry the appointment in Details plus the prescriptions written against it;
// prescription entries not linked to any of the patient's appointments get
// their own row with a nil Details.
type HistoryEntry struct {
	Date          string               `json:"date"`
	Type          string               `json:"type"`
	Details       *model.Appointment   `json:"details"`
	Prescriptions []model.Prescription `json:"prescriptions"`
}

// HistoryStats summarizes the feed's inputs, not its row count.
type HistoryStats struct {
	TotalAppointments  int `json:"totalAppointments"`
	TotalPrescriptions int `json:"totalPrescriptions"`
}

type MedicalHistory struct {
	Patient *model.Patient `json:"patient"`
	History []HistoryEntry `json:"history"`
	Stats   HistoryStats   `json:"stats"`
}

// MedicalHistory joins the patient's appointments and prescriptions into a
// date-descending feed: one entry per appointment (with its linked
// prescriptions attached) plus one entry per prescription whose
// appointmentId matches none of the patient's appointments.
func (s *Service) MedicalHistory(ctx context.Context, patientID string) (*MedicalHistory, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to fetch medical history", err)
	}

	var patient *model.Patient
	for i := range doc.Patients {
		if doc.Patients[i].ID == patientID {
			patient = &doc.Patients[i]
			break
		}
	}
	if patient == nil {
		return nil, apperr.New(apperr.NotFound, "Patient not found")
	}

	var appointments []model.Appointment
	for _, a := range doc.Appointments {
		if a.PatientID == patientID {
			appointments = append(appointments, a)
		}
	}
	var prescriptions []model.Prescription
	for _, p := range doc.Prescriptions {
		if p.PatientID == patientID {
			prescriptions = append(prescriptions, p)
		}
	}

	// Both inputs are ordered newest-first before entries are built, so an
	// appointment's attached prescriptions come out date-descending too.
	sort.SliceStable(appointments, func(i, j int) bool {
		return parseDate(appointments[i].Date).After(parseDate(appointments[j].Date))
	})
	sort.SliceStable(prescriptions, func(i, j int) bool {
		return parseDate(prescriptions[i].Date).After(parseDate(prescriptions[j].Date))
	})

	linked := make(map[string]bool, len(appointments))
	for _, a := range appointments {
		linked[a.ID] = true
	}

	history := make([]HistoryEntry, 0, len(appointments)+len(prescriptions))
	for i := range appointments {
		a := appointments[i]
		entry := HistoryEntry{
			Date:          a.Date,
			Type:          "appointment",
			Details:       &a,
			Prescriptions: []model.Prescription{},
		}
		for _, p := range prescriptions {
			if p.AppointmentID == a.ID {
				entry.Prescriptions = append(entry.Prescriptions, p)
			}
		}
		history = append(history, entry)
	}
	for _, p := range prescriptions {
		if p.AppointmentID != "" && linked[p.AppointmentID] {
			continue
		}
		history = append(history, HistoryEntry{
			Date:          p.Date,
			Type:          "prescription",
			Prescriptions: []model.Prescription{p},
		})
	}

	// Newest first; equal dates keep their relative order.
	sort.SliceStable(history, func(i, j int) bool {
		return parseDate(history[i].Date).After(parseDate(history[j].Date))
	})

	return &MedicalHistory{
		Patient: patient,
		History: history,
		Stats: HistoryStats{
			TotalAppointments:  len(appointments),
			TotalPrescriptions: len(prescriptions),
		},
	}, nil
}

// parseDate accepts the two date shapes that occur in stored records: a full
// RFC 3339 timestamp or a bare YYYY-MM-DD. Anything else sorts as the zero
// time, i.e. to the end of the feed.
func parseDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
