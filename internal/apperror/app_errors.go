package apperror

import "errors"

var (
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrMoveSource         = errors.New("move source failed")
	ErrNoLegalMoves       = errors.New("no legal columns left")
	ErrInputClosed        = errors.New("input closed")
	ErrCheckpointNotFound = errors.New("checkpoint not found")
	ErrCheckpointMismatch = errors.New("checkpoint belongs to a different roster")
)
