package model

import "time"

// Review is a patient's rating of a completed appointment. At most one
// review exists per appointment. CreatedAt is set once at creation and never
// changes; it anchors the 24-hour edit window.
type Review struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointmentId"`
	DoctorID      string    `json:"doctorId"`
	PatientID     string    `json:"patientId"`
	Rating        int       `json:"rating"`
	ReviewText    string    `json:"reviewText,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
