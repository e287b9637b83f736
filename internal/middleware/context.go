// Package middleware промежуточные обработчики HTTP: идентификация игрока,
// rate limiting, логирование запросов и восстановление после паники.
package middleware

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

var playerIDKey = ctxKey{}

func WithPlayerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, playerIDKey, id)
}

func PlayerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(playerIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
