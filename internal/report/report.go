// Package report formats store contents for people to read.
// Every function writes plain lines to an io.Writer and returns the first
// write error.
package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bft-labs/stockroom/internal/domain"
)

// DateLayout is the layout used for every date in a report.
const DateLayout = "2006-01-02"

// Stock is a record with a display name and a quantity.
type Stock interface {
	Key() int
	Title() string
	Qty() int
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// Heading writes a section title.
func Heading(w io.Writer, title string) error {
	p := &printer{w: w}
	p.linef("%s:", title)
	return p.err
}

// Blank writes an empty line.
func Blank(w io.Writer) error {
	_, err := io.WriteString(w, "\n")
	return err
}

// InventoryItems writes one line per inventory log entry.
func InventoryItems(w io.Writer, items []domain.InventoryItem) error {
	p := &printer{w: w}
	for _, it := range items {
		p.linef("ID: %d, Name: %s, Quantity: %d, Date Added: %s",
			it.ID, it.Name, it.Quantity, it.DateAdded.Format(DateLayout))
	}
	return p.err
}

// StockItems writes one line per stock record.
func StockItems[T Stock](w io.Writer, items []T) error {
	p := &printer{w: w}
	for _, it := range items {
		p.linef("ID: %d, Name: %s, Quantity: %d", it.Key(), it.Title(), it.Qty())
	}
	return p.err
}

// Patients writes one line per patient.
func Patients(w io.Writer, patients []domain.Patient) error {
	p := &printer{w: w}
	for _, pt := range patients {
		p.linef("ID: %d, Name: %s, Age: %d, Gender: %s", pt.ID, pt.Name, pt.Age, pt.Gender)
	}
	return p.err
}

// Prescriptions writes the prescriptions issued to one patient.
func Prescriptions(w io.Writer, patientID int, prescriptions []domain.Prescription) error {
	p := &printer{w: w}
	if len(prescriptions) == 0 {
		p.linef("No prescriptions found for patient ID %d.", patientID)
		return p.err
	}
	p.linef("Prescriptions for patient ID %d:", patientID)
	for _, rx := range prescriptions {
		p.linef("Prescription ID: %d, Medication: %s, Date Issued: %s",
			rx.ID, rx.MedicationName, rx.DateIssued.Format(DateLayout))
	}
	return p.err
}

// Processed writes the confirmation for a transaction handled by a payment channel.
func Processed(w io.Writer, channel string, t domain.Transaction) error {
	p := &printer{w: w}
	p.linef("[%s] Processed %s for %s", channel, Money(t.AmountCents), t.Category)
	return p.err
}

// Balance writes an account's balance after a transaction was applied.
func Balance(w io.Writer, balanceCents int64) error {
	p := &printer{w: w}
	p.linef("Transaction applied. New balance: %s", Money(balanceCents))
	return p.err
}

// Line writes a free-form line.
func Line(w io.Writer, format string, args ...any) error {
	p := &printer{w: w}
	p.linef(format, args...)
	return p.err
}

// Money formats cents as US dollars with thousands separators, e.g. "$1,250.00".
func Money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := message.NewPrinter(language.AmericanEnglish).Sprintf("%d", cents/100)
	return fmt.Sprintf("%s$%s.%02d", sign, whole, cents%100)
}
