package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// RoleAdmin may perform every operation, including all patient-record
	// writes.
	RoleAdmin = "admin"
	// RolePatient may read its own patient record only.
	RolePatient = "patient"

	// CookieName is the http-only session cookie carrying the JWT.
	CookieName = "clinic_token"
)

// Claims is the session payload. Subject holds the account id; PatientID is
// set only for patient-role sessions and names the record the session owns.
type Claims struct {
	jwt.RegisteredClaims
	Role      string `json:"role"`
	PatientID string `json:"patient_id,omitempty"`
}

// Config holds the signing secret and session lifetime.
type Config struct {
	Secret []byte
	TTL    time.Duration
}

// IssueToken signs a new session token for the given account.
func IssueToken(cfg Config, subject, role, patientID string) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(cfg.TTL)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Role:      role,
		PatientID: patientID,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expires, nil
}

// ParseToken verifies a token's signature and expiry and returns its claims.
func ParseToken(cfg Config, raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return cfg.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// SessionCookie builds the http-only cookie carrying a session token.
func SessionCookie(token string, expires time.Time, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie clears the session cookie.
func ExpiredCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
