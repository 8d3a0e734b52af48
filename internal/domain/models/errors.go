package models

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is the sentinel for matching with errors.Is.
var ErrInsufficientData = errors.New("insufficient data")

// InsufficientDataError reports that a computation needed more bars or
// points than the input provided. It is recoverable: callers skip the
// symbol and continue.
type InsufficientDataError struct {
	Op   string
	Need int
	Got  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: insufficient data: need %d bars, got %d", e.Op, e.Need, e.Got)
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// NewInsufficientData builds an InsufficientDataError for the given operation.
func NewInsufficientData(op string, need, got int) error {
	return &InsufficientDataError{Op: op, Need: need, Got: got}
}

// DataError reports degenerate input: zero variance, a non-positive price
// feeding a logarithm, a zero denominator. Also recoverable.
type DataError struct {
	Op     string
	Reason string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// NewDataError builds a DataError for the given operation.
func NewDataError(op, reason string) error {
	return &DataError{Op: op, Reason: reason}
}
