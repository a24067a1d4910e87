// Package domain contains the record types held by stockroom's stores.
//
// This package has no dependencies on infrastructure concerns. Every record
// carries an integer ID assigned by the caller and never changed afterwards.
//
// # Entities
//
//   - [InventoryItem]: an item logged with the date it was added
//   - [ElectronicItem], [GroceryItem]: warehouse stock with a mutable quantity
//   - [Patient], [Prescription]: health records linked by patient ID
//   - [Transaction]: a finance entry applied to a [SavingsAccount]
//
// # Design Principles
//
// Records are values. Types with a quantity implement store.Stocked by
// returning an updated copy from WithQty instead of mutating in place.
// Struct tags name every field for the json, toml and yaml sink codecs and
// never use omitempty, so a persisted record always carries its full shape.
package domain
