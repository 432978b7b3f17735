package model

// Appointment statuses.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
	AppointmentApproved  = "approved"
)

// Appointment references a doctor and a patient by ID. DoctorName,
// PatientName, and Specialty are denormalized copies taken at creation time;
// they are not refreshed if the referenced profile changes later.
type Appointment struct {
	ID               string `json:"id"`
	DoctorID         string `json:"doctorId"`
	PatientID        string `json:"patientId"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Status           string `json:"status"`
	ConsultationType string `json:"consultationType,omitempty"`
	DoctorName       string `json:"doctorName,omitempty"`
	PatientName      string `json:"patientName,omitempty"`
	Specialty        string `json:"specialty,omitempty"`
}
