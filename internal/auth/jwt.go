package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func sessionTTL() time.Duration {
	if s := os.Getenv("JWT_EXPIRES_IN"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return 24 * time.Hour
}

// SessionTTL is the lifetime of a newly issued session token.
func SessionTTL() time.Duration { return sessionTTL() }

// Sign issues an HS256 token carrying the user identity and the session's
// JTI. The JTI ties the token to a revocable server-side session row.
func Sign(userID uint, username string, isAdmin bool, jti string) (string, error) {
	key := []byte(os.Getenv("JWT_SECRET"))
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      username,
		"uid":      userID,
		"is_admin": isAdmin,
		"jti":      jti,
		"exp":      now.Add(sessionTTL()).Unix(),
		"iat":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// Verify parses and validates a token and returns its claims.
func Verify(tokenStr string) (Claims, error) {
	key := []byte(os.Getenv("JWT_SECRET"))
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return Claims{}, errors.New("invalid token")
	}
	mapc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid claims")
	}
	c := Claims{}
	if s, ok := mapc["sub"].(string); ok {
		c.Username = s
	}
	if f, ok := mapc["uid"].(float64); ok {
		c.UserID = uint(f)
	}
	if b, ok := mapc["is_admin"].(bool); ok {
		c.IsAdmin = b
	}
	if s, ok := mapc["jti"].(string); ok {
		c.JWTID = s
	}
	return c, nil
}
