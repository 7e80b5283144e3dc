// file: internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"lesku_backend/internals/configs"
	authmodel "lesku_backend/internals/features/users/auth/model"
)

const accessTTLDefault = 24 * time.Hour

func buildAccessClaims(user authmodel.User, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       user.UserID.String(),
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

// CreateAccessToken menerbitkan JWT HS256 dengan klaim id/role/user_name.
func CreateAccessToken(user authmodel.User) (string, error) {
	now := time.Now().UTC()
	claims := buildAccessClaims(user, now)
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

// AccessTokenExpiry dipakai blacklist saat logout.
func AccessTokenExpiry(claims jwt.MapClaims) time.Time {
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0).UTC()
	}
	return time.Now().UTC().Add(accessTTLDefault)
}
