// Package log is the structured logging abstraction used by stockroom.
//
// Components that report failures without returning them, such as the
// best-effort save and load of a persisted log, write to a [Logger]. Three
// implementations are provided:
//
//   - [ZerologAdapter]: writes through github.com/rs/zerolog.
//   - [Recorder]: keeps entries in memory so callers can inspect them.
//   - [NoopLogger]: discards everything.
//
// # Usage
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	l := persist.New[domain.InventoryItem]("inventory.json", persist.WithLogger(logger))
//
// Inspecting diagnostics:
//
//	rec := log.NewRecorder()
//	l := persist.New[domain.InventoryItem](path, persist.WithLogger(rec))
//	l.Load(ctx)
//	for _, e := range rec.Entries(log.LevelError) { ... }
package log
