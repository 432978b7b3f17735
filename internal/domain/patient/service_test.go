package patient

import (
	"context"
	"testing"

	"github.com/healthplus/healthplus/internal/model"
	"github.com/healthplus/healthplus/internal/platform/apperr"
	"github.com/healthplus/healthplus/internal/platform/store"
)

func TestCreatePatient_RequiresNameAndEmail(t *testing.T) {
	svc := NewService(store.NewMemStore(nil))

	_, err := svc.CreatePatient(context.Background(), &model.Patient{Name: "Emma"})
	if apperr.KindOf(err) != apperr.Invalid {
		t.Fatalf("expected Invalid, got %v", err)
	}
	if err.Error() != "Missing required fields" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestGetPatient_NotFound(t *testing.T) {
	svc := NewService(store.NewMemStore(nil))

	_, err := svc.GetPatient(context.Background(), "missing")
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if err.Error() != "Patient not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestUpdatePatient_ShallowMerge(t *testing.T) {
	st := store.NewMemStore(&model.Document{
		Patients: []model.Patient{{ID: "pat-1", Name: "Emma", Email: "emma@example.com"}},
	})
	svc := NewService(st)

	updated, err := svc.UpdatePatient(context.Background(), "pat-1", map[string]any{
		"phone": "+1-555-0100",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Phone != "+1-555-0100" {
		t.Errorf("expected phone merged, got %q", updated.Phone)
	}
	if updated.Name != "Emma" {
		t.Errorf("expected name preserved, got %q", updated.Name)
	}
}

func TestMedicalHistory_JoinsAndSorts(t *testing.T) {
	st := store.NewMemStore(&model.Document{
		Patients: []model.Patient{{ID: "pat-1", Name: "Emma", Email: "emma@example.com"}},
		Appointments: []model.Appointment{
			{ID: "apt-1", DoctorID: "doc-1", PatientID: "pat-1", Date: "2024-01-01", Time: "10:00"},
		},
		Prescriptions: []model.Prescription{
			{ID: "rx-1", DoctorID: "doc-1", PatientID: "pat-1", AppointmentID: "apt-1", Date: "2024-01-01",
				Medicines: []model.Medicine{{Name: "Aspirin", Dosage: "75mg", Duration: "7 days"}}},
			{ID: "rx-2", DoctorID: "doc-1", PatientID: "pat-1", Date: "2023-06-15",
				Medicines: []model.Medicine{{Name: "Ibuprofen", Dosage: "200mg", Duration: "3 days"}}},
		},
	})
	svc := NewService(st)

	hist, err := svc.MedicalHistory(context.Background(), "pat-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hist.Patient == nil || hist.Patient.ID != "pat-1" {
		t.Fatalf("unexpected patient: %+v", hist.Patient)
	}
	if len(hist.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(hist.History))
	}

	first := hist.History[0]
	if first.Type != "appointment" || first.Details == nil || first.Details.ID != "apt-1" {
		t.Errorf("expected appointment entry first, got %+v", first)
	}
	if len(first.Prescriptions) != 1 || first.Prescriptions[0].ID != "rx-1" {
		t.Errorf("expected rx-1 attached to appointment, got %+v", first.Prescriptions)
	}

	second := hist.History[1]
	if second.Type != "prescription" || second.Details != nil {
		t.Errorf("expected standalone prescription entry, got %+v", second)
	}
	if len(second.Prescriptions) != 1 || second.Prescriptions[0].ID != "rx-2" {
		t.Errorf("expected rx-2 in standalone entry, got %+v", second.Prescriptions)
	}

	if hist.Stats.TotalAppointments != 1 || hist.Stats.TotalPrescriptions != 2 {
		t.Errorf("unexpected stats: %+v", hist.Stats)
	}
}

func TestMedicalHistory_EntryCount(t *testing.T) {
	// N appointments plus M prescriptions, K of them linked, must yield
	// N + (M-K) entries.
	st := store.NewMemStore(&model.Document{
		Patients: []model.Patient{{ID: "pat-1", Name: "Emma", Email: "emma@example.com"}},
		Appointments: []model.Appointment{
			{ID: "apt-1", PatientID: "pat-1", Date: "2024-03-01"},
			{ID: "apt-2", PatientID: "pat-1", Date: "2024-02-01"},
			{ID: "apt-other", PatientID: "pat-2", Date: "2024-01-15"},
		},
		Prescriptions: []model.Prescription{
			{ID: "rx-1", PatientID: "pat-1", AppointmentID: "apt-1", Date: "2024-03-01"},
			{ID: "rx-2", PatientID: "pat-1", AppointmentID: "apt-1", Date: "2024-03-02"},
			{ID: "rx-3", PatientID: "pat-1", Date: "2024-01-10"},
		},
	})
	svc := NewService(st)

	hist, err := svc.MedicalHistory(context.Background(), "pat-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// N=2, M=3, K=2 -> 3 entries.
	if len(hist.History) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(hist.History))
	}
	for i := 1; i < len(hist.History); i++ {
		prev := parseDate(hist.History[i-1].Date)
		cur := parseDate(hist.History[i].Date)
		if cur.After(prev) {
			t.Errorf("history not sorted descending at index %d", i)
		}
	}
	if hist.Stats.TotalAppointments != 2 || hist.Stats.TotalPrescriptions != 3 {
		t.Errorf("unexpected stats: %+v", hist.Stats)
	}
}

func TestMedicalHistory_AttachedPrescriptionsNewestFirst(t *testing.T) {
	// Store order is oldest-first on purpose; the attached list must still
	// come back date-descending.
	st := store.NewMemStore(&model.Document{
		Patients: []model.Patient{{ID: "pat-1", Name: "Emma", Email: "emma@example.com"}},
		Appointments: []model.Appointment{
			{ID: "apt-1", PatientID: "pat-1", Date: "2024-01-01"},
		},
		Prescriptions: []model.Prescription{
			{ID: "rx-old", PatientID: "pat-1", AppointmentID: "apt-1", Date: "2024-01-02"},
			{ID: "rx-new", PatientID: "pat-1", AppointmentID: "apt-1", Date: "2024-03-02"},
		},
	})
	svc := NewService(st)

	hist, err := svc.MedicalHistory(context.Background(), "pat-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hist.History) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(hist.History))
	}
	attached := hist.History[0].Prescriptions
	if len(attached) != 2 {
		t.Fatalf("expected 2 attached prescriptions, got %d", len(attached))
	}
	if attached[0].ID != "rx-new" || attached[1].ID != "rx-old" {
		t.Errorf("attached prescriptions not date-descending: got [%s %s]", attached[0].ID, attached[1].ID)
	}
}

func TestMedicalHistory_PatientNotFound(t *testing.T) {
	svc := NewService(store.NewMemStore(nil))

	_, err := svc.MedicalHistory(context.Background(), "missing")
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if err.Error() != "Patient not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestParseDate(t *testing.T) {
	if parseDate("2024-01-01").IsZero() {
		t.Error("expected YYYY-MM-DD to parse")
	}
	if parseDate("2024-01-01T10:30:00Z").IsZero() {
		t.Error("expected RFC 3339 to parse")
	}
	if !parseDate("not a date").IsZero() {
		t.Error("expected junk to yield zero time")
	}
}
