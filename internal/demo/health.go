package demo

import (
	"github.com/bft-labs/stockroom/internal/domain"
	"github.com/bft-labs/stockroom/internal/report"
	"github.com/bft-labs/stockroom/pkg/store"
)

// Health keeps patients and prescriptions in plain stores and indexes
// prescriptions by patient for display.
type Health struct {
	Patients      *store.Store[domain.Patient]
	Prescriptions *store.Store[domain.Prescription]

	byPatient map[int][]domain.Prescription
	env       Env
}

// NewHealth creates an empty health system.
func NewHealth(env Env) *Health {
	return &Health{
		Patients:      store.New[domain.Patient](),
		Prescriptions: store.New[domain.Prescription](),
		byPatient:     make(map[int][]domain.Prescription),
		env:           env.withDefaults(),
	}
}

// Seed adds the sample patients and prescriptions.
func (h *Health) Seed() {
	now := h.env.Now().UTC()
	h.Patients.Add(domain.Patient{ID: 1, Name: "Alice Smith", Age: 30, Gender: "Female"})
	h.Patients.Add(domain.Patient{ID: 2, Name: "Bob Johnson", Age: 45, Gender: "Male"})
	h.Patients.Add(domain.Patient{ID: 3, Name: "Carol Lee", Age: 28, Gender: "Female"})

	h.Prescriptions.Add(domain.Prescription{ID: 1, PatientID: 1, MedicationName: "Amoxicillin", DateIssued: now.AddDate(0, 0, -10)})
	h.Prescriptions.Add(domain.Prescription{ID: 2, PatientID: 1, MedicationName: "Ibuprofen", DateIssued: now.AddDate(0, 0, -5)})
	h.Prescriptions.Add(domain.Prescription{ID: 3, PatientID: 2, MedicationName: "Paracetamol", DateIssued: now.AddDate(0, 0, -2)})
	h.Prescriptions.Add(domain.Prescription{ID: 4, PatientID: 3, MedicationName: "Cetirizine", DateIssued: now.AddDate(0, 0, -1)})
	h.Prescriptions.Add(domain.Prescription{ID: 5, PatientID: 2, MedicationName: "Metformin", DateIssued: now})
}

// BuildPrescriptionMap rebuilds the patient index from the prescription store.
func (h *Health) BuildPrescriptionMap() {
	h.byPatient = domain.GroupByPatient(h.Prescriptions.All())
}

// PrescriptionsFor returns the indexed prescriptions of one patient, or
// an empty slice.
func (h *Health) PrescriptionsFor(patientID int) []domain.Prescription {
	if ps, ok := h.byPatient[patientID]; ok {
		return ps
	}
	return []domain.Prescription{}
}

// FindPatient returns the first patient with the given ID.
func (h *Health) FindPatient(id int) (domain.Patient, bool) {
	return h.Patients.FindFirst(func(p domain.Patient) bool { return p.ID == id })
}

// Discharge removes a patient and their prescriptions, returning whether
// the patient existed.
func (h *Health) Discharge(patientID int) bool {
	if !h.Patients.RemoveFirst(func(p domain.Patient) bool { return p.ID == patientID }) {
		return false
	}
	for h.Prescriptions.RemoveFirst(func(rx domain.Prescription) bool { return rx.PatientID == patientID }) {
	}
	h.BuildPrescriptionMap()
	return true
}

// Run seeds the system, prints every patient and then the prescriptions
// of the selected patient.
func (h *Health) Run(patientID int) error {
	out := h.env.Out
	h.Seed()
	h.BuildPrescriptionMap()

	if err := report.Heading(out, "All Patients"); err != nil {
		return err
	}
	if err := report.Patients(out, h.Patients.All()); err != nil {
		return err
	}
	if err := report.Blank(out); err != nil {
		return err
	}
	if _, ok := h.FindPatient(patientID); !ok {
		return report.Line(out, "No patient with ID %d.", patientID)
	}
	return report.Prescriptions(out, patientID, h.PrescriptionsFor(patientID))
}
