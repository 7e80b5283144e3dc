// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Kunci Locals yang dihydrate middleware auth.
const (
	LocRawToken = "raw_token"
	LocUserID   = "user_id"
	LocUserRole = "userRole"
	LocUserName = "user_name"
)

// GetRawAccessToken mengembalikan access token dari:
// 1) Authorization header "Bearer <token>"
// 2) cookie "access_token"
// 3) Locals("raw_token") yang diset middleware
func GetRawAccessToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return ""
}

// SetRawAccessToken menyimpan raw token ke Locals (dipakai logout/blacklist).
func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}

// GetUserRole membaca role dari Locals (diisi middleware auth).
func GetUserRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return v
	}
	return ""
}
