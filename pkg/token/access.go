package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"kingdom_backend/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

func GenerateAccessToken(playerID uuid.UUID, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := model.PlayerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   playerID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.PlayerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.PlayerClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*model.PlayerClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims", ErrInvalidToken)
	}

	return claims, nil
}

// PlayerID ID игрока из проверенного токена
func PlayerID(tokenStr string, secretKey []byte) (uuid.UUID, error) {
	claims, err := VerifyToken(tokenStr, secretKey)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not a player id", ErrInvalidToken)
	}

	return id, nil
}
