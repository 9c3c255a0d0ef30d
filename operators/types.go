package operators

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrUnsupported is the panic value raised by Apply for operands the
	// operator does not support.
	ErrUnsupported = errors.New("operators: unsupported operands")

	// ErrUnknownOperator is returned by Parse for an unrecognised name.
	ErrUnknownOperator = errors.New("operators: unknown operator")
)

// Kind enumerates the operators. The zero value None marks a value that was
// not produced by any operator, i.e. an original input.
type Kind uint8

const (
	None Kind = iota
	Add
	Subtract
	Multiply
	Divide
)

// Chain groups operators that associate with each other.
type Chain uint8

const (
	ChainNone Chain = iota
	ChainAddition
	ChainMultiplication
)

// Table is an ordered set of operators the search may apply.
type Table []Kind

// CountdownRules is the standard rule set.
var CountdownRules = Table{Add, Subtract, Multiply, Divide}

// Origin describes where an available value came from: the operator that
// produced it and that step's second operand. Op == None for inputs.
type Origin struct {
	Value int
	Op    Kind
	B     int
}

// Input returns the Origin of an original source value.
func Input(v int) Origin { return Origin{Value: v} }

// Name returns the display symbol.
func (k Kind) Name() string {
	switch k {
	case Add:
		return "+"
	case Subtract:
		return "−"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	}

	return ""
}

// ID returns the short identifier: add, sub, mul or div.
func (k Kind) ID() string {
	switch k {
	case Add:
		return "add"
	case Subtract:
		return "sub"
	case Multiply:
		return "mul"
	case Divide:
		return "div"
	}

	return "none"
}

// String implements fmt.Stringer with the display symbol.
func (k Kind) String() string {
	if k == None {
		return "none"
	}

	return k.Name()
}

// Chain returns the associativity chain the operator belongs to.
func (k Kind) Chain() Chain {
	switch k {
	case Add, Subtract:
		return ChainAddition
	case Multiply, Divide:
		return ChainMultiplication
	}

	return ChainNone
}

// Parse maps a display name, an ID or an ASCII alias back to its Kind.
func Parse(name string) (Kind, error) {
	switch strings.TrimSpace(name) {
	case "+", "add":
		return Add, nil
	case "−", "-", "sub":
		return Subtract, nil
	case "×", "*", "x", "mul":
		return Multiply, nil
	case "÷", "/", "div":
		return Divide, nil
	}

	return None, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
}
