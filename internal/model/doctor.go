package model

// Availability lists the weekdays a doctor sees patients, split by venue.
type Availability struct {
	Clinic []string `json:"clinic,omitempty"`
	Online []string `json:"online,omitempty"`
}

// Doctor is a provider profile. Rating and ReviewCount are derived fields
// maintained by the review domain's recompute routine; everything else is
// set at signup or by profile updates. Doctors are never deleted.
type Doctor struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	Email                string        `json:"email"`
	Password             string        `json:"password,omitempty"`
	Phone                string        `json:"phone,omitempty"`
	Specialty            string        `json:"specialty,omitempty"`
	Qualifications       string        `json:"qualifications,omitempty"`
	Experience           string        `json:"experience,omitempty"`
	ClinicAddress        string        `json:"clinicAddress,omitempty"`
	Rating               float64       `json:"rating"`
	ReviewCount          int           `json:"reviewCount"`
	ConsultationFee      float64       `json:"consultationFee,omitempty"`
	VideoConsultationFee float64       `json:"videoConsultationFee,omitempty"`
	Availability         *Availability `json:"availability,omitempty"`
	TimeSlots            []string      `json:"timeSlots,omitempty"`
	Image                string        `json:"image,omitempty"`
	About                string        `json:"about,omitempty"`
	ConsultationType     []string      `json:"consultationType,omitempty"`
}
