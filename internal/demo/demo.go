// Package demo contains the sample programs built on stockroom's stores:
// an inventory log persisted between sessions, a warehouse of typed
// repositories, a patient/prescription lookup and a small finance ledger.
//
// Demos never print directly; all output goes to Env.Out through the
// report package and all diagnostics go to Env.Logger.
package demo

import (
	"errors"
	"io"
	"time"

	"github.com/bft-labs/stockroom/pkg/log"
	"github.com/bft-labs/stockroom/pkg/persist"
)

// ErrPersistence is returned by demos run in strict mode when a save or
// load did not succeed.
var ErrPersistence = errors.New("demo: persistence failed")

// Env holds what every demo needs from its caller.
type Env struct {
	Out    io.Writer
	Logger log.Logger
	// Now returns the current time; seed data is dated relative to it.
	Now func() time.Time
	// Codec is the sink codec for demos that persist.
	Codec persist.Codec
	// Strict turns a failed save or load into an error.
	Strict bool
}

func (e Env) withDefaults() Env {
	if e.Out == nil {
		e.Out = io.Discard
	}
	if e.Logger == nil {
		e.Logger = log.NewNoopLogger()
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.Codec == nil {
		e.Codec = persist.JSON
	}
	return e
}

// check applies the strict policy to a persistence outcome.
func (e Env) check(out persist.Outcome) error {
	if out.OK() || !e.Strict {
		return nil
	}
	return errors.Join(ErrPersistence, out.Err)
}
