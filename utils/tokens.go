package utils

import (
	"os"
	"time"

	"github.com/kataras/iris/v12/middleware/jwt"
	kjwt "github.com/kataras/jwt"
)

// SessionCookieName carries the signed admin session token.
const SessionCookieName = "admin_token"

// SessionMaxAge is the validity window of an issued session.
const SessionMaxAge = 7 * 24 * time.Hour

// SessionToken is the claims payload of an admin session. Issuing is
// stateless: there is no server-side revocation list, a session ends only by
// discarding the cookie or by expiry.
type SessionToken struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// CreateSessionToken signs a 7-day HS256 token for the given admin.
func CreateSessionToken(id uint, email string) (string, error) {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ADMIN_TOKEN_SECRET"), SessionMaxAge)

	token, err := signer.Sign(SessionToken{ID: id, Email: email})
	if err != nil {
		return "", err
	}
	return string(token), nil
}

// ValidateSessionToken verifies signature and expiry. Any failure, whether a
// malformed token, a bad signature or an expired session, collapses to nil;
// callers treat nil as "not authenticated", never as an error.
func ValidateSessionToken(raw string) *SessionToken {
	if raw == "" {
		return nil
	}

	verified, err := kjwt.Verify(kjwt.HS256, []byte(os.Getenv("ADMIN_TOKEN_SECRET")), []byte(raw))
	if err != nil {
		return nil
	}

	var claims SessionToken
	if err := verified.Claims(&claims); err != nil {
		return nil
	}
	return &claims
}
