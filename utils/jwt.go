package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"shootdesk/models"

	"github.com/golang-jwt/jwt"
)

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ViewerFromToken reads the viewer identity out of a bearer token's claims.
// The signature is not verified here; the backend verifies every forwarded call.
func ViewerFromToken(tokenString string) (models.Viewer, error) {
	if tokenString == "" {
		return models.Viewer{}, errors.New("empty token")
	}
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims); err != nil {
		return models.Viewer{}, fmt.Errorf("token is not a readable JWT: %w", err)
	}

	v := models.Viewer{
		ID:    firstClaim(claims, "id", "user_id", "sub"),
		Name:  firstClaim(claims, "name", "username"),
		Email: firstClaim(claims, "email"),
		Role:  firstClaim(claims, "role"),
	}
	if v.Name == "" {
		first, last := firstClaim(claims, "first_name"), firstClaim(claims, "last_name")
		v.Name = strings.TrimSpace(first + " " + last)
	}
	if v.ID == "" {
		return models.Viewer{}, errors.New("token does not identify a user")
	}
	return v, nil
}

func firstClaim(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		switch val := claims[k].(type) {
		case string:
			if val != "" {
				return val
			}
		case float64:
			return fmt.Sprintf("%.0f", val)
		}
	}
	return ""
}
