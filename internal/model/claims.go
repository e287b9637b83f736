package model

import "github.com/golang-jwt/jwt/v5"

// PlayerClaims access token игрока, ID игрока в sub
type PlayerClaims struct {
	jwt.RegisteredClaims
}
