package fishmg

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrInvalidFEN is returned for malformed FEN strings.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrInvalidMove is returned when a UCI move string cannot be applied to the position.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInconsistentBoard marks a broken board invariant. Used as a panic value.
	ErrInconsistentBoard = errors.New("inconsistent board")

	// ErrEmptyHistory is the panic value for UndoMove without a matching MakeMove.
	ErrEmptyHistory = errors.New("undo with empty history")
)

// FENError describes which field of a FEN string could not be parsed.
type FENError struct {
	FEN   string
	Field string
	Err   error
}

func (e *FENError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s (%s: %v)", ErrInvalidFEN, e.FEN, e.Field, e.Err)
	}
	return fmt.Sprintf("%v: %s (%s)", ErrInvalidFEN, e.FEN, e.Field)
}

// Unwrap lets errors.Is match both ErrInvalidFEN and the underlying cause.
func (e *FENError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidFEN, e.Err}
	}
	return []error{ErrInvalidFEN}
}

// MoveError carries the offending move string.
type MoveError struct {
	Move   string
	Reason string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrInvalidMove, e.Move, e.Reason)
}

func (e *MoveError) Unwrap() error { return ErrInvalidMove }

func fenError(fen, field string, err error) error {
	return &FENError{FEN: fen, Field: field, Err: err}
}
