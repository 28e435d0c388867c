package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims do token JWT do operador da API.
type Claims struct {
	UserEmail string
	jwt.RegisteredClaims
}
