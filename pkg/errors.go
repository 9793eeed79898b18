package vex

import "fmt"

type SyntaxErrorKind int

const (
	UnexpectedToken SyntaxErrorKind = iota
	MissingColon
	UnexpectedEOF
)

func (k SyntaxErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case MissingColon:
		return "MissingColon"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	default:
		return fmt.Sprintf("SyntaxErrorKind(%d)", int(k))
	}
}

// SyntaxError is returned by the parser. Token is the offending token text and
// Expected, when set, describes what the parser wanted instead.
type SyntaxError struct {
	Kind     SyntaxErrorKind
	Token    string
	Expected string
}

func (e *SyntaxError) Error() string {
	switch {
	case e.Kind == UnexpectedEOF && e.Expected != "":
		return fmt.Sprintf("syntax error: expected %s but reached end of input", e.Expected)
	case e.Kind == UnexpectedEOF:
		return "syntax error: unexpected end of input"
	case e.Expected != "":
		return fmt.Sprintf("syntax error: expected %s but got '%s'", e.Expected, e.Token)
	default:
		return fmt.Sprintf("syntax error: unexpected token '%s'", e.Token)
	}
}

type RuntimeErrorKind int

const (
	UnknownNodeType RuntimeErrorKind = iota
	UnknownOperator
	UndefinedVariable
	NonNumericOperand
	InvalidAssignment
)

func (k RuntimeErrorKind) String() string {
	switch k {
	case UnknownNodeType:
		return "UnknownNodeType"
	case UnknownOperator:
		return "UnknownOperator"
	case UndefinedVariable:
		return "UndefinedVariable"
	case NonNumericOperand:
		return "NonNumericOperand"
	case InvalidAssignment:
		return "InvalidAssignment"
	default:
		return fmt.Sprintf("RuntimeErrorKind(%d)", int(k))
	}
}

// RuntimeError is returned by the evaluator. Subject holds the offending
// operator, node kind or variable name.
type RuntimeError struct {
	Kind    RuntimeErrorKind
	Subject string
}

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case UnknownNodeType:
		return fmt.Sprintf("runtime error: unknown node type: %s", e.Subject)
	case UnknownOperator:
		return fmt.Sprintf("runtime error: unknown operator: %s", e.Subject)
	case UndefinedVariable:
		return fmt.Sprintf("runtime error: undefined variable: %s", e.Subject)
	case NonNumericOperand:
		return fmt.Sprintf("runtime error: non-numeric operand: %s", e.Subject)
	case InvalidAssignment:
		return fmt.Sprintf("runtime error: cannot assign to %s", e.Subject)
	default:
		return fmt.Sprintf("runtime error: %s: %s", e.Kind, e.Subject)
	}
}

// CompileError is returned when a program cannot be lowered to IR.
type CompileError struct {
	Reason  string
	Subject string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile error: %s: %s", e.Reason, e.Subject)
}
