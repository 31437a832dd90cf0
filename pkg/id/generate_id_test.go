package id

import (
	"encoding/hex"
	"testing"
)

func TestNewID32_Shape(t *testing.T) {
	got := NewID32()

	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got %q)", len(got), got)
	}
	// lowercase hex only: must decode to exactly 16 bytes
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("not hex: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded length = %d, want 16", len(b))
	}
	for _, r := range got {
		if r >= 'A' && r <= 'Z' {
			t.Fatalf("uppercase character in id %q", got)
		}
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 500
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		v := NewID32()
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate id after %d draws: %q", i, v)
		}
		seen[v] = struct{}{}
	}
}
