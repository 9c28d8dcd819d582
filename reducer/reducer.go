// Package reducer folds numeric lines into a running sum and count and
// reduces that state to a single value according to an Operation.
package reducer

import (
	"errors"
	"strings"
)

var ErrInvalidOperation = errors.New("invalid operation")

// Operation selects the final reduction applied to an Accumulator.
type Operation int

const (
	Mean Operation = iota
	Sum
)

// ParseOperation matches s against the operation names without regard
// to case.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(s) {
	case "mean":
		return Mean, nil
	case "sum":
		return Sum, nil
	}
	return 0, ErrInvalidOperation
}

func (o Operation) String() string {
	switch o {
	case Mean:
		return "mean"
	case Sum:
		return "sum"
	}
	return "unknown"
}

// Stats tracks the lines that did not contribute to the result.
type Stats struct {
	Blank    uint64
	Unparsed uint64
}
