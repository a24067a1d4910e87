package demo

import (
	"errors"
	"io"

	"github.com/bft-labs/stockroom/internal/domain"
	"github.com/bft-labs/stockroom/internal/report"
	"github.com/bft-labs/stockroom/pkg/log"
	"github.com/bft-labs/stockroom/pkg/store"
)

// Warehouse holds one repository per kind of stock.
type Warehouse struct {
	Electronics *store.Repository[domain.ElectronicItem]
	Groceries   *store.Repository[domain.GroceryItem]

	env Env
}

// NewWarehouse creates an empty warehouse.
func NewWarehouse(env Env) *Warehouse {
	return &Warehouse{
		Electronics: store.NewRepository[domain.ElectronicItem](),
		Groceries:   store.NewRepository[domain.GroceryItem](),
		env:         env.withDefaults(),
	}
}

// Seed adds the sample stock.
func (w *Warehouse) Seed() error {
	now := w.env.Now().UTC()
	electronics := []domain.ElectronicItem{
		{ID: 1, Name: "Laptop", Quantity: 10, Brand: "Dell", WarrantyMonths: 24},
		{ID: 2, Name: "Smartphone", Quantity: 20, Brand: "Samsung", WarrantyMonths: 12},
		{ID: 3, Name: "Headphones", Quantity: 15, Brand: "Sony", WarrantyMonths: 18},
	}
	groceries := []domain.GroceryItem{
		{ID: 1, Name: "Milk", Quantity: 30, ExpiryDate: now.AddDate(0, 0, 7)},
		{ID: 2, Name: "Bread", Quantity: 25, ExpiryDate: now.AddDate(0, 0, 3)},
		{ID: 3, Name: "Eggs", Quantity: 40, ExpiryDate: now.AddDate(0, 0, 10)},
	}
	for _, e := range electronics {
		if err := w.Electronics.Add(e); err != nil {
			return err
		}
	}
	for _, g := range groceries {
		if err := w.Groceries.Add(g); err != nil {
			return err
		}
	}
	return nil
}

// IncreaseStock adds amount to a record's quantity and prints the result.
// Failures are printed, not returned, so a demo run continues.
func IncreaseStock[T store.Stocked[T]](out io.Writer, logger log.Logger, repo *store.Repository[T], id, amount int) error {
	item, err := repo.GetByID(id)
	if err == nil {
		err = repo.UpdateQuantity(id, item.Qty()+amount)
	}
	if err != nil {
		logger.Warn("increase stock failed", log.Int("id", id), log.Err(err))
		return report.Line(out, "Error: %v", err)
	}
	// Read back: the repository stores values, so item still holds the old quantity.
	updated, err := repo.GetByID(id)
	if err != nil {
		return report.Line(out, "Error: %v", err)
	}
	return report.Line(out, "Stock increased for item ID %d. New quantity: %d", id, updated.Qty())
}

// RemoveByID deletes a record and prints the result.
func RemoveByID[T store.Stocked[T]](out io.Writer, logger log.Logger, repo *store.Repository[T], id int) error {
	if err := repo.Remove(id); err != nil {
		logger.Warn("remove failed", log.Int("id", id), log.Err(err))
		return report.Line(out, "Error: %v", err)
	}
	return report.Line(out, "Item ID %d removed.", id)
}

// TryOperations provokes each repository failure once and prints how it
// was classified.
func (w *Warehouse) TryOperations() error {
	now := w.env.Now().UTC()
	attempts := []error{
		w.Groceries.Add(domain.GroceryItem{ID: 1, Name: "Milk Duplicate", Quantity: 10, ExpiryDate: now.AddDate(0, 0, 5)}),
		w.Electronics.Remove(99),
		w.Groceries.UpdateQuantity(2, -5),
	}
	for _, err := range attempts {
		if err := report.Line(w.env.Out, "%s: %v", classify(err), err); err != nil {
			return err
		}
	}
	return nil
}

func classify(err error) string {
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, store.ErrDuplicateKey):
		return "DuplicateKey"
	case errors.Is(err, store.ErrNotFound):
		return "NotFound"
	case errors.Is(err, store.ErrInvalidQuantity):
		return "InvalidQuantity"
	default:
		return "Error"
	}
}

// Run seeds the warehouse, prints both repositories, adjusts stock and
// then exercises the failure paths.
func (w *Warehouse) Run() error {
	out := w.env.Out
	steps := []func() error{
		w.Seed,
		func() error { return report.Heading(out, "Grocery Items") },
		func() error { return report.StockItems(out, w.Groceries.All()) },
		func() error { return report.Blank(out) },
		func() error { return report.Heading(out, "Electronic Items") },
		func() error { return report.StockItems(out, w.Electronics.All()) },
		func() error { return report.Blank(out) },
		func() error { return IncreaseStock(out, w.env.Logger, w.Groceries, 3, 10) },
		func() error { return RemoveByID(out, w.env.Logger, w.Electronics, 2) },
		func() error { return report.Blank(out) },
		w.TryOperations,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
