package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified caller extracted from a token.
type Identity struct {
	UserID         int64
	Username       string
	IsProfessional bool
}

var secretKey = []byte("supersecret")

// SetSecret replaces the signing key; main calls this with the
// configured secret before the server starts.
func SetSecret(s string) {
	if s != "" {
		secretKey = []byte(s)
	}
}

func GenerateToken(userID int64, username string, professional bool) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":         userID,
		"username":       username,
		"isProfessional": professional,
		"exp":            time.Now().Add(2 * time.Hour).Unix(),
	})
	return token.SignedString(secretKey)
}

// VerifyToken checks the signature and expiry and returns the caller
// identity from the claims.
func VerifyToken(token string) (Identity, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return Identity{}, errors.New("could not parse token")
	}
	if !parsedToken.Valid {
		return Identity{}, errors.New("invalid token")
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid token claims")
	}

	uid, ok := claims["userId"].(float64)
	if !ok {
		return Identity{}, errors.New("invalid token claims")
	}
	ident := Identity{UserID: int64(uid)}
	if name, ok := claims["username"].(string); ok {
		ident.Username = name
	}
	if pro, ok := claims["isProfessional"].(bool); ok {
		ident.IsProfessional = pro
	}
	return ident, nil
}
