// Package calculator implements the four arithmetic operations offered by
// the console calculator and the HTTP API.
package calculator

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by Divide when the divisor is exactly zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrUnknownOp is returned by Apply and ParseOp for an unsupported operation.
var ErrUnknownOp = errors.New("unknown operation")

func Add(x, y float64) float64      { return x + y }
func Subtract(x, y float64) float64 { return x - y }
func Multiply(x, y float64) float64 { return x * y }

func Divide(x, y float64) (float64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x / y, nil
}

// Op is one of the supported operations.
type Op int

const (
	OpAdd Op = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

var opNames = map[Op]string{
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpMultiply: "multiply",
	OpDivide:   "divide",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Symbol is the infix operator used when printing a result line.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// ParseOp maps an operation name ("add", "subtract", "multiply", "divide").
func ParseOp(name string) (Op, error) {
	for op, n := range opNames {
		if n == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

// Apply dispatches op over x and y.
func Apply(op Op, x, y float64) (float64, error) {
	switch op {
	case OpAdd:
		return Add(x, y), nil
	case OpSubtract:
		return Subtract(x, y), nil
	case OpMultiply:
		return Multiply(x, y), nil
	case OpDivide:
		return Divide(x, y)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownOp, op)
	}
}
