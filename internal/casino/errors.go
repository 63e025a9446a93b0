package casino

import "errors"

var (
	ErrInvalidBet       = errors.New("invalid bet")
	ErrBetBelowMin      = errors.New("bet below game minimum")
	ErrBetAboveMax      = errors.New("bet above game maximum")
	ErrInactiveGame     = errors.New("game is not active")
	ErrWrongGameType    = errors.New("game id does not match this game")
	ErrInvalidBetType   = errors.New("invalid bet type")
	ErrInvalidNumber    = errors.New("bet number must be between 0 and 36")
	ErrInvalidAction    = errors.New("invalid action for this round")
	ErrRoundNotFound    = errors.New("round not found")
	ErrDoubleNotAllowed = errors.New("double only allowed as the first action")
)
