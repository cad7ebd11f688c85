// Package calc is the arithmetic engine behind calculations: a closed set
// of operations and a pure evaluator over two operands.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrDivisionByZero       = errors.New("cannot divide by zero")
	ErrResultOutOfRange     = errors.New("result out of range")
)

// Operation is one of the supported binary operations.
type Operation int

const (
	Add Operation = iota + 1
	Subtract
	Multiply
	Divide
)

// Operations lists every supported operation in a stable order.
var Operations = []Operation{Add, Subtract, Multiply, Divide}

func (o Operation) String() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// ParseOperation maps a name to an Operation, ignoring case. Unknown names,
// including ones padded with whitespace, wrap ErrUnsupportedOperation.
func ParseOperation(name string) (Operation, error) {
	normalized := strings.ToLower(name)
	for _, op := range Operations {
		if op.String() == normalized {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w '%s'", ErrUnsupportedOperation, name)
}

// Evaluate applies op to a and b. Division by zero and results that
// overflow float64 are errors, never an infinity or NaN.
func Evaluate(op Operation, a, b float64) (float64, error) {
	result, err := apply(op, a, b)
	if err != nil {
		return 0, err
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, ErrResultOutOfRange
	}
	return result, nil
}

func apply(op Operation, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("%w '%s'", ErrUnsupportedOperation, op)
}

// EvaluateNamed parses name and evaluates it in one step, returning the
// canonical operation name alongside the result.
func EvaluateNamed(name string, a, b float64) (Operation, float64, error) {
	op, err := ParseOperation(name)
	if err != nil {
		return 0, 0, err
	}
	result, err := Evaluate(op, a, b)
	if err != nil {
		return 0, 0, err
	}
	return op, result, nil
}
