package vex

import (
	"context"
	"log/slog"
)

// Interpreter walks a Program against its own Environment. An Interpreter is
// not safe for concurrent use; create one per run.
type Interpreter struct {
	env    *Environment
	logger *slog.Logger
}

func NewInterpreter(opts ...Option) *Interpreter {
	o := newOptions(opts)

	return &Interpreter{
		env:    NewEnvironment(),
		logger: o.logger,
	}
}

// Evaluate runs program in a fresh environment and returns it.
func Evaluate(program *Program, opts ...Option) (*Environment, error) {
	in := NewInterpreter(opts...)
	if err := in.Run(program); err != nil {
		return nil, err
	}

	return in.Env(), nil
}

func (in *Interpreter) Env() *Environment {
	return in.env
}

// Reset drops every binding.
func (in *Interpreter) Reset() {
	in.env = NewEnvironment()
}

// Run executes each statement of program in order.
func (in *Interpreter) Run(program *Program) error {
	if program == nil {
		return &RuntimeError{Kind: UnknownNodeType, Subject: NodeKind(nil)}
	}

	in.trace(program)

	for _, stmt := range program.Body {
		if _, err := in.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// Exec executes a single statement and returns its value. Declarations and
// assignments return the environment.
func (in *Interpreter) Exec(stmt Stmt) (Value, error) {
	if decl, ok := stmt.(*VariableDecl); ok {
		in.trace(decl)
		in.env.Declare(decl.Name, decl.DataType)
		return in.env, nil
	}

	expr, ok := stmt.(Expr)
	if !ok {
		return nil, &RuntimeError{Kind: UnknownNodeType, Subject: NodeKind(stmt)}
	}

	return in.eval(expr)
}

func (in *Interpreter) eval(expr Expr) (Value, error) {
	in.trace(expr)

	switch e := expr.(type) {
	case *NumberLiteral:
		return IntValue(e.Value), nil
	case *FloatLiteral:
		return FloatValue(e.Value), nil
	case *Variable:
		v, ok := in.env.Get(e.Name)
		if !ok {
			return nil, &RuntimeError{Kind: UndefinedVariable, Subject: e.Name}
		}

		return v, nil
	case *BinaryExpr:
		return in.binaryExpression(e)
	default:
		return nil, &RuntimeError{Kind: UnknownNodeType, Subject: NodeKind(expr)}
	}
}

func (in *Interpreter) binaryExpression(e *BinaryExpr) (Value, error) {
	if e.Operation == BinaryAssign {
		return in.assign(e)
	}

	switch e.Operation {
	case BinaryAddition, BinarySubtraction, BinaryMultiplication, BinaryDivision:
	default:
		return nil, &RuntimeError{Kind: UnknownOperator, Subject: string(e.Operation)}
	}

	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}

	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	return arithmetic(e.Operation, left, right)
}

// assign stores the right operand under the left variable's name. The result
// is the environment, not the stored value.
func (in *Interpreter) assign(e *BinaryExpr) (Value, error) {
	target, ok := e.Left.(*Variable)
	if !ok {
		return nil, &RuntimeError{Kind: InvalidAssignment, Subject: NodeKind(e.Left)}
	}

	if _, declared := in.env.Get(target.Name); !declared {
		return nil, &RuntimeError{Kind: UndefinedVariable, Subject: target.Name}
	}

	v, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	if err := in.env.Set(target.Name, v); err != nil {
		return nil, err
	}

	return in.env, nil
}

func (in *Interpreter) trace(n Node) {
	if !in.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	in.logger.Debug("evaluate",
		"node", NodeKind(n),
		"env", in.env.String(),
	)
}
