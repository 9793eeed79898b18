package vex

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// globalPrefix keeps variable globals apart from @main, @dump and @printf.
const globalPrefix = "v."

type binding struct {
	global *ir.Global
	typ    DataType
}

// ValueLookup maps variable names to their globals, in declaration order.
type ValueLookup struct {
	vals  map[string]binding
	order []string
}

func NewValueLookup() *ValueLookup {
	return &ValueLookup{
		vals: make(map[string]binding),
	}
}

func (l *ValueLookup) Get(id string) (*ir.Global, DataType, bool) {
	b, ok := l.vals[id]
	return b.global, b.typ, ok
}

func (l *ValueLookup) Set(id string, g *ir.Global, t DataType) {
	if _, ok := l.vals[id]; !ok {
		l.order = append(l.order, id)
	}

	l.vals[id] = binding{global: g, typ: t}
}

func (l *ValueLookup) Names() []string {
	return l.order
}

// operand is a lowered expression together with its static type.
type operand struct {
	val value.Value
	typ DataType
}

func llvmType(t DataType) types.Type {
	if t == DataFloat {
		return types.Double
	}

	return types.I64
}

func llvmZero(t DataType) constant.Constant {
	if t == DataFloat {
		return constant.NewFloat(types.Double, 0)
	}

	return constant.NewInt(types.I64, 0)
}

type LLVMIRBuilder struct {
	mod    *ir.Module
	block  *ir.Block
	values *ValueLookup
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	builder := &LLVMIRBuilder{
		mod:    ir.NewModule(),
		values: NewValueLookup(),
	}

	main := builder.mod.NewFunc("main", types.Void)
	builder.block = main.NewBlock("")

	return builder
}

func (b *LLVMIRBuilder) statement(stmt Stmt) error {
	switch s := stmt.(type) {
	case *VariableDecl:
		return b.variableDecl(s)
	case *BinaryExpr:
		if s.Operation == BinaryAssign {
			return b.assignment(s)
		}
	}

	expr, ok := stmt.(Expr)
	if !ok {
		return &CompileError{Reason: "unknown node type", Subject: NodeKind(stmt)}
	}

	_, ins, err := b.recursiveLoad(expr)
	if err != nil {
		return err
	}

	b.block.Insts = append(b.block.Insts, ins...)
	return nil
}

func (b *LLVMIRBuilder) variableDecl(expr *VariableDecl) error {
	g, typ, declared := b.values.Get(expr.Name)
	if declared && typ != expr.DataType {
		return &CompileError{Reason: "redeclared with a different type", Subject: expr.Name}
	}

	if !declared {
		g = b.mod.NewGlobalDef(globalPrefix+expr.Name, llvmZero(expr.DataType))
		b.values.Set(expr.Name, g, expr.DataType)
	}

	// Redeclaring resets to zero, as in the interpreter
	b.block.Insts = append(b.block.Insts, ir.NewStore(llvmZero(expr.DataType), g))
	return nil
}

func (b *LLVMIRBuilder) assignment(expr *BinaryExpr) error {
	target, ok := expr.Left.(*Variable)
	if !ok {
		return &CompileError{Reason: "cannot assign to", Subject: NodeKind(expr.Left)}
	}

	g, typ, declared := b.values.Get(target.Name)
	if !declared {
		return &CompileError{Reason: "undefined variable", Subject: target.Name}
	}

	op, ins, err := b.recursiveLoad(expr.Right)
	if err != nil {
		return err
	}

	v, convIns := b.convert(op, typ)
	ins = append(ins, convIns...)
	ins = append(ins, ir.NewStore(v, g))

	b.block.Insts = append(b.block.Insts, ins...)
	return nil
}

func (b *LLVMIRBuilder) recursiveLoad(expr Expr) (operand, []ir.Instruction, error) {
	switch e := expr.(type) {
	case *NumberLiteral:
		return operand{constant.NewInt(types.I64, e.Value), DataInt}, nil, nil
	case *FloatLiteral:
		return operand{constant.NewFloat(types.Double, e.Value), DataFloat}, nil, nil
	case *Variable:
		g, typ, ok := b.values.Get(e.Name)
		if !ok {
			return operand{}, nil, &CompileError{Reason: "undefined variable", Subject: e.Name}
		}

		load := ir.NewLoad(llvmType(typ), g)
		return operand{load, typ}, []ir.Instruction{load}, nil
	case *BinaryExpr:
		return b.binaryExpression(e)
	default:
		return operand{}, nil, &CompileError{Reason: "unknown node type", Subject: NodeKind(expr)}
	}
}

func (b *LLVMIRBuilder) binaryExpression(expr *BinaryExpr) (operand, []ir.Instruction, error) {
	if expr.Operation == BinaryAssign {
		return operand{}, nil, &CompileError{Reason: "assignment used as a value", Subject: NodeKind(expr.Left)}
	}

	v1, i1, err := b.recursiveLoad(expr.Left)
	if err != nil {
		return operand{}, nil, err
	}

	v2, i2, err := b.recursiveLoad(expr.Right)
	if err != nil {
		return operand{}, nil, err
	}

	ins := append(i1, i2...)

	if v1.typ == DataInt && v2.typ == DataInt {
		var op ir.Instruction
		var val value.Value
		switch expr.Operation {
		case BinaryAddition:
			add := ir.NewAdd(v1.val, v2.val)
			op, val = add, add
		case BinarySubtraction:
			sub := ir.NewSub(v1.val, v2.val)
			op, val = sub, sub
		case BinaryMultiplication:
			mul := ir.NewMul(v1.val, v2.val)
			op, val = mul, mul
		}

		if op != nil {
			return operand{val, DataInt}, append(ins, op), nil
		}
	}

	// Mixed operands and every division are computed in double
	x, xIns := b.convert(v1, DataFloat)
	y, yIns := b.convert(v2, DataFloat)
	ins = append(ins, xIns...)
	ins = append(ins, yIns...)

	switch expr.Operation {
	case BinaryAddition:
		op := ir.NewFAdd(x, y)
		return operand{op, DataFloat}, append(ins, op), nil
	case BinarySubtraction:
		op := ir.NewFSub(x, y)
		return operand{op, DataFloat}, append(ins, op), nil
	case BinaryMultiplication:
		op := ir.NewFMul(x, y)
		return operand{op, DataFloat}, append(ins, op), nil
	case BinaryDivision:
		op := ir.NewFDiv(x, y)
		return operand{op, DataFloat}, append(ins, op), nil
	default:
		return operand{}, nil, &CompileError{Reason: "unknown operator", Subject: string(expr.Operation)}
	}
}

func (b *LLVMIRBuilder) convert(op operand, to DataType) (value.Value, []ir.Instruction) {
	switch {
	case op.typ == to:
		return op.val, nil
	case to == DataFloat:
		conv := ir.NewSIToFP(op.val, types.Double)
		return conv, []ir.Instruction{conv}
	default:
		conv := ir.NewFPToSI(op.val, types.I64)
		return conv, []ir.Instruction{conv}
	}
}

// finish closes @main with a call to the builtin dump of every variable.
func (b *LLVMIRBuilder) finish() *ir.Module {
	dump := defineBuiltins(b)
	b.block.Insts = append(b.block.Insts, ir.NewCall(dump))
	b.block.NewRet(nil)

	return b.mod
}

type LLVMGenerator struct {
	program *Program
}

func NewLLVMGenerator(program *Program) *LLVMGenerator {
	return &LLVMGenerator{
		program: program,
	}
}

func (g LLVMGenerator) Do() (*ir.Module, error) {
	if g.program == nil {
		return nil, &CompileError{Reason: "unknown node type", Subject: NodeKind(nil)}
	}

	builder := NewLLVMIRBuilder()
	for _, stmt := range g.program.Body {
		if err := builder.statement(stmt); err != nil {
			return nil, err
		}
	}

	return builder.finish(), nil
}

// Compile lowers program to an LLVM module whose @main runs the statements
// and prints every variable.
func Compile(program *Program) (*ir.Module, error) {
	return NewLLVMGenerator(program).Do()
}
