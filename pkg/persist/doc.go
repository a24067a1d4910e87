// Package persist adds best-effort durable storage to a store.Store.
//
// A [Log] wraps a Store and a sink path. Save writes the Store's records to
// the sink as a structured text document; Load reads them back and replaces
// the Store's contents. Neither returns an error: failures are written to
// the configured logger and described by the returned [Outcome], so the
// in-memory store is never destabilized by persistence problems.
//
// # Usage
//
//	l := persist.New[domain.InventoryItem]("inventory.json",
//	    persist.WithLogger(logger))
//	l.Add(item)
//	if out := l.Save(); !out.OK() {
//	    // persistence did not happen; out.Err says why
//	}
//
//	fresh := persist.New[domain.InventoryItem]("inventory.json")
//	fresh.Load()
//
// # Sink Format
//
// The sink holds a single document with a "records" key whose value is the
// ordered list of records. Each record is written with named fields taken
// from the record type's struct tags. JSON (default), TOML and YAML codecs
// are available; see [CodecFor].
//
// Decoding is strict: a record with an unexpected field, or missing one of
// the record type's fields, makes the whole load fail and leaves the Store
// unchanged. Record fields must therefore not use omitempty.
//
// Saves are atomic: the document is written to a temporary file next to the
// sink and renamed over it.
package persist
