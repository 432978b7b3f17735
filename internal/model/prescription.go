package model

// Medicine is one line item on a prescription.
type Medicine struct {
	Name     string `json:"name"`
	Dosage   string `json:"dosage,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// Prescription holds an ordered medicine list plus free-text notes.
// AppointmentID may be empty: prescriptions written outside an appointment
// appear as standalone entries in the medical-history feed.
type Prescription struct {
	ID            string     `json:"id"`
	DoctorID      string     `json:"doctorId"`
	PatientID     string     `json:"patientId"`
	AppointmentID string     `json:"appointmentId,omitempty"`
	Date          string     `json:"date"`
	Medicines     []Medicine `json:"medicines"`
	Notes         string     `json:"notes,omitempty"`
}
