package store

import "github.com/healthplus/healthplus/internal/model"

// SeedDocument returns the initial dataset written when the backing store
// does not exist yet: two doctors and one demo patient.
func SeedDocument() *model.Document {
	doc := &model.Document{
		Doctors: []model.Doctor{
			{
				ID:                   "1",
				Name:                 "Dr. Robert Williams",
				Email:                "robert@healthplus.com",
				Password:             "doctor2023",
				Phone:                "+1-555-0101",
				Specialty:            "Cardiology",
				Qualifications:       "MD, FACC",
				Experience:           "15 years",
				ClinicAddress:        "Heart Care Center, 123 Medical Plaza, New York",
				Rating:               4.8,
				ReviewCount:          156,
				ConsultationFee:      150,
				VideoConsultationFee: 100,
				Availability: &model.Availability{
					Clinic: []string{"Monday", "Wednesday", "Friday"},
					Online: []string{"Tuesday", "Thursday", "Saturday"},
				},
				TimeSlots:        []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
				Image:            "https://i.postimg.cc/FRdQCcCQ/dr-sarah.jpg",
				About:            "Experienced cardiologist specializing in heart disease prevention and treatment.",
				ConsultationType: []string{"clinic", "video", "call"},
			},
			{
				ID:              "2",
				Name:            "Dr. Jennifer Lee",
				Email:           "jennifer@healthplus.com",
				Password:        "doctor2023",
				Phone:           "+1-555-0102",
				Specialty:       "Dermatology",
				Qualifications:  "MD, FAAD",
				Experience:      "12 years",
				ClinicAddress:   "Skin Care Clinic, 456 Health Street, Los Angeles",
				Rating:          4.9,
				ReviewCount:     203,
				ConsultationFee: 120,
				Availability: &model.Availability{
					Clinic: []string{"Monday", "Tuesday", "Thursday"},
					Online: []string{"Wednesday", "Friday", "Saturday"},
				},
				TimeSlots:        []string{"08:00", "09:00", "10:00", "13:00", "14:00", "15:00"},
				Image:            "https://i.postimg.cc/hvvKB6tN/dr-michael.jpg",
				About:            "Board-certified dermatologist with expertise in skin conditions and cosmetic procedures.",
				ConsultationType: []string{"clinic", "video", "call"},
			},
		},
		Patients: []model.Patient{
			{
				ID:       "1",
				Name:     "Emma Thompson",
				Email:    "emma@healthplus.com",
				Password: "patient2023",
				Phone:    "+1-555-1001",
			},
		},
	}
	doc.Normalize()
	return doc
}
