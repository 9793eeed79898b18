package vex

import (
	"strconv"
)

// Value is the result of evaluating a node: an IntValue, a FloatValue, or the
// *Environment produced by an assignment.
type Value interface {
	String() string
	value()
}

type IntValue int64

type FloatValue float64

func (IntValue) value()      {}
func (FloatValue) value()    {}
func (*Environment) value() {}

func (v IntValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v FloatValue) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (v IntValue) MarshalYAML() (interface{}, error) {
	return int64(v), nil
}

func (v FloatValue) MarshalYAML() (interface{}, error) {
	return float64(v), nil
}

// zeroValue is what a fresh declaration binds.
func zeroValue(t DataType) Value {
	if t == DataFloat {
		return FloatValue(0)
	}

	return IntValue(0)
}

// AsFloat reports the numeric value of v as a float64. ok is false for
// non-numeric values.
func AsFloat(v Value) (f float64, ok bool) {
	switch n := v.(type) {
	case IntValue:
		return float64(n), true
	case FloatValue:
		return float64(n), true
	default:
		return 0, false
	}
}

// arithmetic applies +, - or * to two numeric values. Two ints stay int; any
// float promotes both sides.
func arithmetic(op BinaryOp, l, r Value) (Value, error) {
	li, lInt := l.(IntValue)
	ri, rInt := r.(IntValue)
	if lInt && rInt && op != BinaryDivision {
		switch op {
		case BinaryAddition:
			return li + ri, nil
		case BinarySubtraction:
			return li - ri, nil
		case BinaryMultiplication:
			return li * ri, nil
		}
	}

	lf, ok := AsFloat(l)
	if !ok {
		return nil, &RuntimeError{Kind: NonNumericOperand, Subject: ValueKind(l)}
	}

	rf, ok := AsFloat(r)
	if !ok {
		return nil, &RuntimeError{Kind: NonNumericOperand, Subject: ValueKind(r)}
	}

	switch op {
	case BinaryAddition:
		return FloatValue(lf + rf), nil
	case BinarySubtraction:
		return FloatValue(lf - rf), nil
	case BinaryMultiplication:
		return FloatValue(lf * rf), nil
	case BinaryDivision:
		// IEEE 754: a zero divisor gives ±Inf or NaN
		return FloatValue(lf / rf), nil
	default:
		return nil, &RuntimeError{Kind: UnknownOperator, Subject: string(op)}
	}
}

// ValueKind names the variant of v.
func ValueKind(v Value) string {
	switch v.(type) {
	case IntValue:
		return "int"
	case FloatValue:
		return "float"
	case *Environment:
		return "environment"
	default:
		return "nil"
	}
}
