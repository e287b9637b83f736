package model

import "errors"

var (
	// ErrNotEnoughSpins энергии меньше, чем стоит спин выбранного тира
	ErrNotEnoughSpins = errors.New("not enough spins")
	// ErrInvalidAmount отрицательное или нулевое количество ресурса
	ErrInvalidAmount = errors.New("amount must be positive")
)
