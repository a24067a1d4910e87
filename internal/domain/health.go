package domain

import "time"

// Patient is a registered patient.
type Patient struct {
	ID     int    `json:"id" toml:"id" yaml:"id"`
	Name   string `json:"name" toml:"name" yaml:"name"`
	Age    int    `json:"age" toml:"age" yaml:"age"`
	Gender string `json:"gender" toml:"gender" yaml:"gender"`
}

func (p Patient) Key() int { return p.ID }

// Prescription is a medication issued to a patient.
type Prescription struct {
	ID             int       `json:"id" toml:"id" yaml:"id"`
	PatientID      int       `json:"patient_id" toml:"patient_id" yaml:"patient_id"`
	MedicationName string    `json:"medication_name" toml:"medication_name" yaml:"medication_name"`
	DateIssued     time.Time `json:"date_issued" toml:"date_issued" yaml:"date_issued"`
}

func (p Prescription) Key() int { return p.ID }

// GroupByPatient indexes prescriptions by patient ID, keeping their order.
func GroupByPatient(prescriptions []Prescription) map[int][]Prescription {
	out := make(map[int][]Prescription)
	for _, p := range prescriptions {
		out[p.PatientID] = append(out[p.PatientID], p)
	}
	return out
}
