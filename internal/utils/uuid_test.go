package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestMessageIDs_Generate(t *testing.T) {
	ids := NewMessageIDs()

	a := ids.Generate()
	b := ids.Generate()
	if a == b {
		t.Fatal("expected distinct ids")
	}

	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("generated id is not a uuid: %v", err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	if a > b {
		t.Errorf("expected %s to sort before %s", a, b)
	}
}
