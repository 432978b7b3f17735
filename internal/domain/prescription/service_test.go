package prescription

import (
	"context"
	"testing"
	"time"

	"github.com/healthplus/healthplus/internal/model"
	"github.com/healthplus/healthplus/internal/platform/apperr"
	"github.com/healthplus/healthplus/internal/platform/store"
)

func TestCreatePrescription_RequiresMedicines(t *testing.T) {
	svc := NewService(store.NewMemStore(nil))

	cases := []model.Prescription{
		{PatientID: "pat-1", Medicines: []model.Medicine{{Name: "Aspirin"}}},
		{DoctorID: "doc-1", Medicines: []model.Medicine{{Name: "Aspirin"}}},
		{DoctorID: "doc-1", PatientID: "pat-1"},
	}
	for _, p := range cases {
		_, err := svc.CreatePrescription(context.Background(), &p)
		if apperr.KindOf(err) != apperr.Invalid {
			t.Errorf("expected Invalid for %+v, got %v", p, err)
		}
	}
}

func TestCreatePrescription_DefaultsDate(t *testing.T) {
	svc := NewService(store.NewMemStore(nil))
	fixed := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	created, err := svc.CreatePrescription(context.Background(), &model.Prescription{
		DoctorID: "doc-1", PatientID: "pat-1",
		Medicines: []model.Medicine{{Name: "Aspirin", Dosage: "75mg", Duration: "7 days"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Date != "2024-05-10T09:30:00Z" {
		t.Errorf("expected creation date set, got %q", created.Date)
	}
	if created.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestCreatePrescription_KeepsCallerDate(t *testing.T) {
	svc := NewService(store.NewMemStore(nil))

	created, err := svc.CreatePrescription(context.Background(), &model.Prescription{
		DoctorID: "doc-1", PatientID: "pat-1", Date: "2024-01-01",
		Medicines: []model.Medicine{{Name: "Aspirin"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Date != "2024-01-01" {
		t.Errorf("expected caller date kept, got %q", created.Date)
	}
}

func TestListPrescriptions_Filters(t *testing.T) {
	st := store.NewMemStore(&model.Document{
		Prescriptions: []model.Prescription{
			{ID: "rx-1", DoctorID: "doc-1", PatientID: "pat-1", AppointmentID: "apt-1"},
			{ID: "rx-2", DoctorID: "doc-1", PatientID: "pat-2", AppointmentID: "apt-2"},
			{ID: "rx-3", DoctorID: "doc-2", PatientID: "pat-1"},
		},
	})
	svc := NewService(st)

	byPatient, err := svc.ListPrescriptions(context.Background(), ListFilter{PatientID: "pat-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byPatient) != 2 {
		t.Errorf("expected 2 for pat-1, got %d", len(byPatient))
	}

	byAppointment, err := svc.ListPrescriptions(context.Background(), ListFilter{AppointmentID: "apt-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byAppointment) != 1 || byAppointment[0].ID != "rx-2" {
		t.Errorf("expected only rx-2, got %+v", byAppointment)
	}
}

func TestUpdatePrescription_MergesMedicines(t *testing.T) {
	st := store.NewMemStore(&model.Document{
		Prescriptions: []model.Prescription{
			{ID: "rx-1", DoctorID: "doc-1", PatientID: "pat-1",
				Medicines: []model.Medicine{{Name: "Aspirin", Dosage: "75mg", Duration: "7 days"}},
				Notes:     "after meals"},
		},
	})
	svc := NewService(st)

	updated, err := svc.UpdatePrescription(context.Background(), "rx-1", map[string]any{
		"medicines": []map[string]any{
			{"name": "Ibuprofen", "dosage": "200mg", "duration": "3 days"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Medicines) != 1 || updated.Medicines[0].Name != "Ibuprofen" {
		t.Errorf("expected medicines replaced, got %+v", updated.Medicines)
	}
	if updated.Notes != "after meals" {
		t.Errorf("expected notes preserved, got %q", updated.Notes)
	}
}

func TestUpdatePrescription_RejectsEmptyMedicines(t *testing.T) {
	st := store.NewMemStore(&model.Document{
		Prescriptions: []model.Prescription{
			{ID: "rx-1", DoctorID: "doc-1", PatientID: "pat-1",
				Medicines: []model.Medicine{{Name: "Aspirin"}}},
		},
	})
	svc := NewService(st)

	_, err := svc.UpdatePrescription(context.Background(), "rx-1", map[string]any{
		"medicines": []any{},
	})
	if apperr.KindOf(err) != apperr.Invalid {
		t.Fatalf("expected Invalid, got %v", err)
	}
}

func TestDeletePrescription_ReturnsRemoved(t *testing.T) {
	st := store.NewMemStore(&model.Document{
		Prescriptions: []model.Prescription{
			{ID: "rx-1", DoctorID: "doc-1", PatientID: "pat-1",
				Medicines: []model.Medicine{{Name: "Aspirin"}}},
		},
	})
	svc := NewService(st)

	removed, err := svc.DeletePrescription(context.Background(), "rx-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.ID != "rx-1" {
		t.Errorf("expected removed rx-1, got %+v", removed)
	}
	if got := st.Document().Prescriptions; len(got) != 0 {
		t.Errorf("expected empty prescriptions, got %+v", got)
	}
}

func TestGetPrescription_NotFound(t *testing.T) {
	svc := NewService(store.NewMemStore(nil))

	_, err := svc.GetPrescription(context.Background(), "missing")
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if err.Error() != "Prescription not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
