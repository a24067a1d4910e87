package persist

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bft-labs/stockroom/pkg/log"
	"github.com/bft-labs/stockroom/pkg/store"
)

// Option configures a Log.
type Option func(*options)

type options struct {
	codec  Codec
	logger log.Logger
}

// WithCodec sets the sink codec. By default it is chosen from the path's
// extension, falling back to JSON.
func WithCodec(c Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithLogger sets where save and load failures are reported.
// If not provided, a no-op logger is used.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Log wraps a Store with a sink it can be saved to and loaded from.
type Log[T any] struct {
	items  *store.Store[T]
	path   string
	codec  Codec
	logger log.Logger
}

// New creates a Log over an empty Store backed by the sink at path.
// Nothing is read until Load is called.
func New[T any](path string, opts ...Option) *Log[T] {
	return Wrap(store.New[T](), path, opts...)
}

// Wrap creates a Log over an existing Store.
func Wrap[T any](s *store.Store[T], path string, opts ...Option) *Log[T] {
	o := options{
		codec:  CodecForPath(path),
		logger: log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Log[T]{
		items:  s,
		path:   path,
		codec:  o.codec,
		logger: o.logger,
	}
}

// Add appends item to the underlying Store.
func (l *Log[T]) Add(item T) {
	l.items.Add(item)
}

// All returns a copy of the records in insertion order.
func (l *Log[T]) All() []T {
	return l.items.All()
}

// Len returns the number of records held.
func (l *Log[T]) Len() int {
	return l.items.Len()
}

// Path returns the sink path.
func (l *Log[T]) Path() string {
	return l.path
}

// Codec returns the sink codec.
func (l *Log[T]) Codec() Codec {
	return l.codec
}

// Save writes every record to the sink, replacing its previous content.
// Failures are logged and reported in the Outcome; the store is never changed.
func (l *Log[T]) Save() Outcome {
	out := Outcome{Op: "save", Path: l.path}
	records := l.items.All()

	data, err := encode(l.codec, records)
	if err != nil {
		return l.fail(out, ErrEncode, err)
	}
	if err := writeAtomic(l.path, data); err != nil {
		return l.fail(out, ErrIO, err)
	}

	out.Records = len(records)
	l.logger.Debug("sink saved",
		log.String("path", l.path),
		log.String("codec", l.codec.Name()),
		log.Int("records", out.Records))
	return out
}

// Load replaces the store's records with the sink's content.
// A missing sink is not an error: the store is left as it is and the
// Outcome is marked Skipped. If the sink cannot be read or decoded the
// failure is logged and reported, and the store is left exactly as it was.
func (l *Log[T]) Load() Outcome {
	out := Outcome{Op: "load", Path: l.path}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			out.Skipped = true
			l.logger.Debug("sink not found, nothing to load", log.String("path", l.path))
			return out
		}
		return l.fail(out, ErrIO, err)
	}

	records, err := decode[T](l.codec, data)
	if err != nil {
		return l.fail(out, ErrDecode, err)
	}

	l.items.Reset(records)
	out.Records = len(records)
	l.logger.Debug("sink loaded",
		log.String("path", l.path),
		log.String("codec", l.codec.Name()),
		log.Int("records", out.Records))
	return out
}

func (l *Log[T]) fail(out Outcome, kind, cause error) Outcome {
	out.Err = &SinkError{Op: out.Op, Path: l.path, Kind: kind, Err: cause}
	l.logger.Error("sink "+out.Op+" failed",
		log.String("path", l.path),
		log.String("codec", l.codec.Name()),
		log.Err(out.Err))
	return out
}

// writeAtomic writes to a temp file next to path, then renames it into place.
func writeAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
