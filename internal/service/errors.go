package service

import (
	"errors"
	"fmt"

	"kingdom_backend/internal/engine"
)

var (
	ErrNoPlayerID = errors.New("player id not found in context")

	// ErrRewardCalculation состояние игрока или исход не прошли проверку движка, ошибка сервера
	ErrRewardCalculation = errors.New("reward calculation failed")

	ErrUnknownTier        = fmt.Errorf("%w: unknown bet tier", engine.ErrInvalidArgument)
	ErrInvalidStripLength = fmt.Errorf("%w: strip length out of range", engine.ErrInvalidArgument)
	ErrInvalidLimit       = fmt.Errorf("%w: history limit out of range", engine.ErrInvalidArgument)
)
