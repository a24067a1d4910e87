package log

import "sync"

// Level is the severity of a recorded entry.
type Level int

// Levels, lowest first.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the level name in lower case.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is one message captured by a Recorder.
type Entry struct {
	Level   Level
	Message string
	Fields  []Field
}

// Field returns the value of the named field and whether it was present.
func (e Entry) Field(key string) (any, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Recorder implements Logger by keeping every entry in memory.
// An optional Logger receives each entry as well.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	next    Logger
}

// NewRecorder creates a Recorder. Entries are also forwarded to next, if given.
func NewRecorder(next ...Logger) *Recorder {
	r := &Recorder{}
	if len(next) > 0 {
		r.next = next[0]
	}
	return r
}

// Debug records a debug-level message and forwards it.
func (r *Recorder) Debug(msg string, fields ...Field) {
	r.record(LevelDebug, msg, fields)
	if r.next != nil {
		r.next.Debug(msg, fields...)
	}
}

// Info records an info-level message and forwards it.
func (r *Recorder) Info(msg string, fields ...Field) {
	r.record(LevelInfo, msg, fields)
	if r.next != nil {
		r.next.Info(msg, fields...)
	}
}

// Warn records a warn-level message and forwards it.
func (r *Recorder) Warn(msg string, fields ...Field) {
	r.record(LevelWarn, msg, fields)
	if r.next != nil {
		r.next.Warn(msg, fields...)
	}
}

// Error records an error-level message and forwards it.
func (r *Recorder) Error(msg string, fields ...Field) {
	r.record(LevelError, msg, fields)
	if r.next != nil {
		r.next.Error(msg, fields...)
	}
}

// Entries returns the captured entries at or above min, oldest first.
func (r *Recorder) Entries(min Level) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Level >= min {
			out = append(out, e)
		}
	}
	return out
}

// Reset discards all captured entries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

func (r *Recorder) record(level Level, msg string, fields []Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		Level:   level,
		Message: msg,
		Fields:  append([]Field(nil), fields...),
	})
}
