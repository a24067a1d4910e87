package report

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/stockroom/internal/domain"
)

var day = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func TestInventoryItems(t *testing.T) {
	var buf bytes.Buffer
	err := InventoryItems(&buf, []domain.InventoryItem{
		{ID: 1, Name: "Laptop", Quantity: 10, DateAdded: day},
		{ID: 2, Name: "Desk Chair", Quantity: 25, DateAdded: day.AddDate(0, 0, 1)},
	})

	require.NoError(t, err)
	assert.Equal(t,
		"ID: 1, Name: Laptop, Quantity: 10, Date Added: 2025-06-01\n"+
			"ID: 2, Name: Desk Chair, Quantity: 25, Date Added: 2025-06-02\n",
		buf.String())
}

func TestStockItems(t *testing.T) {
	var buf bytes.Buffer
	err := StockItems(&buf, []domain.GroceryItem{
		{ID: 1, Name: "Milk", Quantity: 30},
		{ID: 2, Name: "Bread", Quantity: 25},
	})

	require.NoError(t, err)
	assert.Equal(t, "ID: 1, Name: Milk, Quantity: 30\nID: 2, Name: Bread, Quantity: 25\n", buf.String())
}

func TestPrescriptions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Prescriptions(&buf, 2, []domain.Prescription{
		{ID: 3, PatientID: 2, MedicationName: "Paracetamol", DateIssued: day},
	}))
	assert.Equal(t,
		"Prescriptions for patient ID 2:\n"+
			"Prescription ID: 3, Medication: Paracetamol, Date Issued: 2025-06-01\n",
		buf.String())

	buf.Reset()
	require.NoError(t, Prescriptions(&buf, 9, nil))
	assert.Equal(t, "No prescriptions found for patient ID 9.\n", buf.String())
}

func TestPatients(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Patients(&buf, []domain.Patient{{ID: 1, Name: "Alice Smith", Age: 30, Gender: "Female"}}))
	assert.Equal(t, "ID: 1, Name: Alice Smith, Age: 30, Gender: Female\n", buf.String())
}

func TestFinanceLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Processed(&buf, "Mobile Money", domain.Transaction{AmountCents: 15000, Category: "Groceries"}))
	require.NoError(t, Balance(&buf, 85000))
	assert.Equal(t,
		"[Mobile Money] Processed $150.00 for Groceries\n"+
			"Transaction applied. New balance: $850.00\n",
		buf.String())
}

func TestMoney(t *testing.T) {
	tests := map[int64]string{
		0:          "$0.00",
		5:          "$0.05",
		15000:      "$150.00",
		100000:     "$1,000.00",
		123456789:  "$1,234,567.89",
		-2550:      "-$25.50",
		-123456789: "-$1,234,567.89",
	}
	for cents, want := range tests {
		assert.Equal(t, want, Money(cents), "cents=%d", cents)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteErrorsAreReturned(t *testing.T) {
	err := StockItems(failingWriter{}, []domain.ElectronicItem{{ID: 1}, {ID: 2}})
	assert.EqualError(t, err, "closed")
	assert.Error(t, Heading(failingWriter{}, "x"))
	assert.Error(t, Blank(failingWriter{}))
}
