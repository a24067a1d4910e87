package domain

import "time"

// InventoryItem is an entry in the inventory log.
type InventoryItem struct {
	ID        int       `json:"id" toml:"id" yaml:"id"`
	Name      string    `json:"name" toml:"name" yaml:"name"`
	Quantity  int       `json:"quantity" toml:"quantity" yaml:"quantity"`
	DateAdded time.Time `json:"date_added" toml:"date_added" yaml:"date_added"`
}

func (i InventoryItem) Key() int { return i.ID }

// ElectronicItem is warehouse stock with a brand and warranty.
type ElectronicItem struct {
	ID             int    `json:"id" toml:"id" yaml:"id"`
	Name           string `json:"name" toml:"name" yaml:"name"`
	Quantity       int    `json:"quantity" toml:"quantity" yaml:"quantity"`
	Brand          string `json:"brand" toml:"brand" yaml:"brand"`
	WarrantyMonths int    `json:"warranty_months" toml:"warranty_months" yaml:"warranty_months"`
}

func (e ElectronicItem) Key() int { return e.ID }
func (e ElectronicItem) Qty() int { return e.Quantity }
func (e ElectronicItem) Title() string { return e.Name }

// WithQty returns a copy of e with the given quantity.
func (e ElectronicItem) WithQty(q int) ElectronicItem {
	e.Quantity = q
	return e
}

// GroceryItem is perishable warehouse stock.
type GroceryItem struct {
	ID         int       `json:"id" toml:"id" yaml:"id"`
	Name       string    `json:"name" toml:"name" yaml:"name"`
	Quantity   int       `json:"quantity" toml:"quantity" yaml:"quantity"`
	ExpiryDate time.Time `json:"expiry_date" toml:"expiry_date" yaml:"expiry_date"`
}

func (g GroceryItem) Key() int { return g.ID }
func (g GroceryItem) Qty() int { return g.Quantity }
func (g GroceryItem) Title() string { return g.Name }

// WithQty returns a copy of g with the given quantity.
func (g GroceryItem) WithQty(q int) GroceryItem {
	g.Quantity = q
	return g
}

// Expired reports whether the item's expiry date is before now.
func (g GroceryItem) Expired(now time.Time) bool {
	return g.ExpiryDate.Before(now)
}
