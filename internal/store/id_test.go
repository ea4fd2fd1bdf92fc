package store

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}

	id := gen.NewRunID()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("NewRunID() returned unparseable uuid %q: %v", id, err)
	}
	if parsed.Version() != uuid.Version(7) {
		t.Errorf("uuid version = %v, expected 7", parsed.Version())
	}

	if gen.NewRunID() == id {
		t.Error("consecutive run ids must differ")
	}
}
