package demo

import (
	"github.com/bft-labs/stockroom/internal/domain"
	"github.com/bft-labs/stockroom/internal/report"
	"github.com/bft-labs/stockroom/pkg/log"
	"github.com/bft-labs/stockroom/pkg/persist"
)

// SeedInventory returns the sample inventory log entries.
func SeedInventory(env Env) []domain.InventoryItem {
	env = env.withDefaults()
	now := env.Now().UTC()
	return []domain.InventoryItem{
		{ID: 1, Name: "Laptop", Quantity: 10, DateAdded: now},
		{ID: 2, Name: "Desk Chair", Quantity: 25, DateAdded: now},
		{ID: 3, Name: "Monitor", Quantity: 15, DateAdded: now},
		{ID: 4, Name: "Keyboard", Quantity: 30, DateAdded: now},
		{ID: 5, Name: "Mouse", Quantity: 50, DateAdded: now},
	}
}

// Inventory seeds an inventory log, saves it to sinkPath, then loads it
// into a fresh log as a new session would and prints what was loaded.
func Inventory(env Env, sinkPath string) error {
	env = env.withDefaults()
	opts := []persist.Option{persist.WithCodec(env.Codec), persist.WithLogger(env.Logger)}

	session := persist.New[domain.InventoryItem](sinkPath, opts...)
	for _, item := range SeedInventory(env) {
		session.Add(item)
	}
	saved := session.Save()
	if err := env.check(saved); err != nil {
		return err
	}

	next := persist.New[domain.InventoryItem](sinkPath, opts...)
	loaded := next.Load()
	if err := env.check(loaded); err != nil {
		return err
	}
	env.Logger.Info("inventory session restored",
		log.String("path", sinkPath),
		log.Int("records", next.Len()),
		log.Bool("saved", saved.OK()),
		log.Bool("loaded", loaded.OK()))

	return report.InventoryItems(env.Out, next.All())
}

// ShowInventory loads the log at sinkPath and prints it. A missing sink
// prints nothing.
func ShowInventory(env Env, sinkPath string) error {
	env = env.withDefaults()
	l := persist.New[domain.InventoryItem](sinkPath,
		persist.WithCodec(env.Codec), persist.WithLogger(env.Logger))
	if err := env.check(l.Load()); err != nil {
		return err
	}
	return report.InventoryItems(env.Out, l.All())
}
