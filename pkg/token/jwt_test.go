package token

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "token-test-secret"

func TestAccessToken_RoundTrip(t *testing.T) {
	at, err := NewAccessToken(testSecret, "0123456789abcdef0123456789abcdef", "ADMIN", 15)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if at.Token == "" {
		t.Fatal("empty token")
	}
	if until := time.Until(at.Exp); until < 14*time.Minute || until > 16*time.Minute {
		t.Fatalf("expiry %v not ~15m out", at.Exp)
	}

	claims, err := ParseAccessToken(testSecret, at.Token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "0123456789abcdef0123456789abcdef" || claims.Role != "ADMIN" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	at, err := NewAccessToken(testSecret, "u1", "USER", 15)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAccessToken("different-secret", at.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParseAccessToken_Expired(t *testing.T) {
	at, err := NewAccessToken(testSecret, "u1", "USER", -5)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAccessToken(testSecret, at.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParseAccessToken_Garbage(t *testing.T) {
	if _, err := ParseAccessToken(testSecret, "not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParseAccessToken_UnsignedAlgRejected(t *testing.T) {
	// alg=none, no signature; header/payload are valid base64 JSON
	raw := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
		"eyJzdWIiOiJ1MSIsInJvbGUiOiJVU0VSIn0."
	if _, err := ParseAccessToken(testSecret, raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
