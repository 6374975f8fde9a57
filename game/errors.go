package game

import "github.com/pkg/errors"

var (
	ErrInvalidSize  = errors.New("invalid board size")
	ErrOffBoard     = errors.New("point is not on the playable board")
	ErrInvalidSetup = errors.New("invalid setup position")
	ErrInvariant    = errors.New("position invariant violated")
)
