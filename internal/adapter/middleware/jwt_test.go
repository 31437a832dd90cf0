package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"loan-pricing-approval/pkg/token"

	"github.com/labstack/echo/v4"
)

const jwtTestSecret = "middleware-test-secret"

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := JWTAuth(jwtTestSecret)(okHandler)
	if err := h(c); err != nil {
		t.Fatalf("middleware err: %v", err)
	}
	return rec, c
}

func TestJWTAuth_ValidTokenSetsPrincipal(t *testing.T) {
	at, err := token.NewAccessToken(jwtTestSecret, "ffffffffffffffffffffffffffffffff", "ADMIN", 15)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	rec, c := runJWT(t, "Bearer "+at.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body %s", rec.Code, rec.Body.String())
	}
	if got, _ := c.Get(CtxUserID).(string); got != "ffffffffffffffffffffffffffffffff" {
		t.Fatalf("user_id = %q", got)
	}
	if got, _ := c.Get(CtxRole).(string); got != "ADMIN" {
		t.Fatalf("role = %q", got)
	}
}

func TestJWTAuth_MissingHeaderIs401(t *testing.T) {
	rec, _ := runJWT(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d", rec.Code)
	}
}

func TestJWTAuth_NonBearerSchemeIs401(t *testing.T) {
	rec, _ := runJWT(t, "Basic dXNlcjpwYXNz")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d", rec.Code)
	}
}

func TestJWTAuth_WrongSecretIs401(t *testing.T) {
	at, err := token.NewAccessToken("some-other-secret", "ffffffffffffffffffffffffffffffff", "USER", 15)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	rec, _ := runJWT(t, "Bearer "+at.Token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d", rec.Code)
	}
}

func TestJWTAuth_ExpiredTokenIs401(t *testing.T) {
	at, err := token.NewAccessToken(jwtTestSecret, "ffffffffffffffffffffffffffffffff", "USER", -5)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	rec, _ := runJWT(t, "Bearer "+at.Token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d", rec.Code)
	}
}
