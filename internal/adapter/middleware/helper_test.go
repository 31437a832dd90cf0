package middleware

import (
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"0123456789abcdef0123456789abcdef", true},
		{"A3BB189E-8BF9-3888-9912-ACE4E6543002", true}, // case-insensitive
		{"a3bb189e-8bf9-3888-9912-ace4e6543002", true},
		{"  0123456789abcdef0123456789abcdef  ", true}, // trimmed
		{"0123456789abcdef0123456789abcde", false},     // 31 chars
		{"0123456789abcdef0123456789abcdefg", false},   // non-hex
		{"not-a-uuid", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := validReqID(tt.id); got != tt.want {
			t.Errorf("validReqID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestParseRequestAt(t *testing.T) {
	t.Run("epoch seconds", func(t *testing.T) {
		got, err := parseRequestAt("1736123456")
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if got.Unix() != 1736123456 {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("epoch milliseconds", func(t *testing.T) {
		got, err := parseRequestAt("1736123456789")
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if got.UnixMilli() != 1736123456789 {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("rfc3339 with offset", func(t *testing.T) {
		got, err := parseRequestAt("2026-08-31T10:00:00+07:00")
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		want := time.Date(2026, 8, 31, 3, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("rfc3339 zulu nano", func(t *testing.T) {
		if _, err := parseRequestAt("2026-08-31T10:00:00.123456789Z"); err != nil {
			t.Fatalf("err: %v", err)
		}
	})

	t.Run("naive timestamp rejected", func(t *testing.T) {
		if _, err := parseRequestAt("2026-08-31T10:00:00"); err == nil {
			t.Fatal("want error for timestamp without timezone")
		}
	})

	t.Run("empty rejected", func(t *testing.T) {
		if _, err := parseRequestAt(""); err == nil {
			t.Fatal("want error for empty value")
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := parseRequestAt("yesterday"); err == nil {
			t.Fatal("want error for unparseable value")
		}
	})
}

func TestBuildKey(t *testing.T) {
	got := buildKey("POST", "/api/loans", "actor1", "req1")
	want := "idemp:post:/api/loans:actor1:req1"
	if got != want {
		t.Fatalf("buildKey = %q, want %q", got, want)
	}
}
