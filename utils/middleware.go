package utils

import (
	"net"

	"github.com/kataras/iris/v12"
)

// AdminMiddleware guards admin-gated operations. It validates the session
// cookie before any body parsing or validation runs and stores the admin
// identity for downstream handlers.
func AdminMiddleware(ctx iris.Context) {
	claims := ValidateSessionToken(ctx.GetCookie(SessionCookieName))
	if claims == nil {
		JSONError(ctx, iris.StatusUnauthorized, "unauthorized", "admin session required")
		return
	}
	ctx.Values().Set("adminID", claims.ID)
	ctx.Values().Set("adminEmail", claims.Email)
	ctx.Next()
}

// AdminFromRequest returns the session claims for routes that behave
// differently for admins but stay public, or nil when unauthenticated.
func AdminFromRequest(ctx iris.Context) *SessionToken {
	return ValidateSessionToken(ctx.GetCookie(SessionCookieName))
}

// AdminID returns the authenticated admin's id set by AdminMiddleware.
func AdminID(ctx iris.Context) uint {
	if id, ok := ctx.Values().Get("adminID").(uint); ok {
		return id
	}
	return 0
}

func ClientIP(ctx iris.Context) string {
	if ip := ctx.GetHeader("X-Forwarded-For"); ip != "" {
		return ip
	}
	addr := ctx.RemoteAddr()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
