package engine

import "errors"

// Rule rejections returned by engine operations. All are expected,
// recoverable conditions: the caller re-queries legal sets and retries.
// A rejected action never leaves partial mutations behind.
var (
	ErrOutOfBounds          = errors.New("destination is out of bounds")
	ErrImpassable           = errors.New("destination is impassable or occupied")
	ErrInsufficientMovement = errors.New("not enough movement remaining")
	ErrAlreadyAttacked      = errors.New("unit cannot attack this turn")
	ErrNoTarget             = errors.New("no unit at target position")
	ErrFriendlyFire         = errors.New("target unit is friendly")
	ErrOutOfRange           = errors.New("target is out of range")
	ErrAbilityNotUsable     = errors.New("cannot use ability")
	ErrNoValidTarget        = errors.New("no valid target")
)
