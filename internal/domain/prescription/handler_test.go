package prescription

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/healthplus/healthplus/internal/model"
	"github.com/healthplus/healthplus/internal/platform/apperr"
	"github.com/healthplus/healthplus/internal/platform/store"
)

func TestCreatePrescription_Handler(t *testing.T) {
	h := NewHandler(NewService(store.NewMemStore(nil)))

	body := `{"doctorId":"doc-1","patientId":"pat-1","appointmentId":"apt-1",
		"medicines":[{"name":"Aspirin","dosage":"75mg","duration":"7 days"}],"notes":"after meals"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/prescriptions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePrescription(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var p model.Prescription
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if p.ID == "" || p.Date == "" {
		t.Errorf("expected generated ID and date, got %+v", p)
	}
	if len(p.Medicines) != 1 || p.Medicines[0].Name != "Aspirin" {
		t.Errorf("unexpected medicines: %+v", p.Medicines)
	}
}

func TestCreatePrescription_HandlerMissingMedicines(t *testing.T) {
	h := NewHandler(NewService(store.NewMemStore(nil)))

	body := `{"doctorId":"doc-1","patientId":"pat-1"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/prescriptions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreatePrescription(c)
	if apperr.KindOf(err) != apperr.Invalid {
		t.Fatalf("expected Invalid, got %v", err)
	}
}

func TestListPrescriptions_HandlerAppointmentFilter(t *testing.T) {
	st := store.NewMemStore(&model.Document{
		Prescriptions: []model.Prescription{
			{ID: "rx-1", DoctorID: "doc-1", PatientID: "pat-1", AppointmentID: "apt-1"},
			{ID: "rx-2", DoctorID: "doc-1", PatientID: "pat-1", AppointmentID: "apt-2"},
		},
	})
	h := NewHandler(NewService(st))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/prescriptions?appointmentId=apt-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListPrescriptions(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var prescriptions []model.Prescription
	if err := json.Unmarshal(rec.Body.Bytes(), &prescriptions); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(prescriptions) != 1 || prescriptions[0].ID != "rx-1" {
		t.Errorf("expected only rx-1, got %+v", prescriptions)
	}
}
