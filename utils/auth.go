package utils

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JWT Secret Key
var JwtKey = []byte("your_secret_key") // This will be loaded from .env

// SessionDuration bounds how long a stored session pointer stays valid.
var SessionDuration = 24 * time.Hour

// Claims represents the session token claims. The email identifies the
// signed-in user; cart and order keys are derived from it.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// GenerateSessionToken signs a session token for the given email.
func GenerateSessionToken(email string) (string, error) {
	expirationTime := time.Now().Add(SessionDuration)
	claims := &Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ParseSessionToken validates a stored session token and returns its claims.
// An expired or tampered token returns an error; callers treat that the same
// as an absent session pointer.
func ParseSessionToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}
