// Package model holds the entity types shared by every domain package and
// the Document aggregate that the store persists as one JSON body.
package model

// Document is the entire persisted state: five top-level arrays, read and
// rewritten wholesale on every mutation. Relationships between entities are
// informal string-ID matches with no referential enforcement.
type Document struct {
	Doctors       []Doctor       `json:"doctors"`
	Patients      []Patient      `json:"patients"`
	Appointments  []Appointment  `json:"appointments"`
	Prescriptions []Prescription `json:"prescriptions"`
	Reviews       []Review       `json:"reviews"`
}

// Normalize replaces nil entity slices with empty ones so that a serialized
// document always carries all five top-level keys as arrays.
func (d *Document) Normalize() {
	if d.Doctors == nil {
		d.Doctors = []Doctor{}
	}
	if d.Patients == nil {
		d.Patients = []Patient{}
	}
	if d.Appointments == nil {
		d.Appointments = []Appointment{}
	}
	if d.Prescriptions == nil {
		d.Prescriptions = []Prescription{}
	}
	if d.Reviews == nil {
		d.Reviews = []Review{}
	}
}
