package stockroom

import (
	"errors"
	"path/filepath"
	"testing"
)

type part struct {
	ID       int    `json:"id" toml:"id" yaml:"id"`
	Name     string `json:"name" toml:"name" yaml:"name"`
	Quantity int    `json:"quantity" toml:"quantity" yaml:"quantity"`
}

func (p part) Key() int { return p.ID }
func (p part) Qty() int { return p.Quantity }

func (p part) WithQty(q int) part {
	p.Quantity = q
	return p
}

func TestOpenLog_CodecFromExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parts.toml")

	l := OpenLog[part](path)
	if l.Codec().Name() != "toml" {
		t.Fatalf("Codec = %v, want toml", l.Codec().Name())
	}
	l.Add(part{ID: 1, Name: "bolt", Quantity: 100})
	if out := l.Save(); !out.OK() {
		t.Fatalf("Save() = %v", out.Err)
	}

	next := OpenLog[part](path)
	if out := next.Load(); !out.OK() {
		t.Fatalf("Load() = %v", out.Err)
	}
	if got := next.All(); len(got) != 1 || got[0] != (part{ID: 1, Name: "bolt", Quantity: 100}) {
		t.Errorf("All() = %+v", got)
	}
}

func TestRepositoryErrors(t *testing.T) {
	repo := NewRepository[part]()
	if err := repo.Add(part{ID: 1}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := repo.Add(part{ID: 1}); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("Add() duplicate error = %v, want ErrDuplicateKey", err)
	}
	if err := repo.Remove(2); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove() error = %v, want ErrNotFound", err)
	}
	if err := repo.UpdateQuantity(1, -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("UpdateQuantity() error = %v, want ErrInvalidQuantity", err)
	}
}

func TestNewStore(t *testing.T) {
	s := NewStore[string]()
	s.Add("a")
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}
