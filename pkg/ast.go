package vex

import (
	"fmt"
	"strconv"
)

// Node is any element of the syntax tree. The set of nodes is closed: only
// the types in this file implement it.
type Node interface {
	node()
}

// Stmt is a top-level element of a Program body.
type Stmt interface {
	Node
	stmtNode()
}

// Expr produces a value. Every expression is also a valid statement.
type Expr interface {
	Stmt
	exprNode()
}

type Program struct {
	Body []Stmt
}

type DataType string

const (
	DataInt   DataType = "int"
	DataFloat DataType = "float"
)

func (d DataType) valid() bool {
	return d == DataInt || d == DataFloat
}

type VariableDecl struct {
	Name     string
	DataType DataType
}

type NumberLiteral struct {
	Value int64
}

type FloatLiteral struct {
	Value float64
}

type Variable struct {
	Name string
}

type BinaryOp string

const (
	BinaryAssign         BinaryOp = "="
	BinaryAddition       BinaryOp = "+"
	BinarySubtraction    BinaryOp = "-"
	BinaryMultiplication BinaryOp = "*"
	BinaryDivision       BinaryOp = "/"
)

// BinaryExpr combines Left and Right with Operation. The parser nests chains
// to the right: a - b - c is a - (b - c).
type BinaryExpr struct {
	Operation BinaryOp
	Left      Expr
	Right     Expr
}

func (*Program) node()       {}
func (*VariableDecl) node()  {}
func (*NumberLiteral) node() {}
func (*FloatLiteral) node()  {}
func (*Variable) node()      {}
func (*BinaryExpr) node()    {}

func (*VariableDecl) stmtNode()  {}
func (*NumberLiteral) stmtNode() {}
func (*FloatLiteral) stmtNode()  {}
func (*Variable) stmtNode()      {}
func (*BinaryExpr) stmtNode()    {}

func (*NumberLiteral) exprNode() {}
func (*FloatLiteral) exprNode()  {}
func (*Variable) exprNode()      {}
func (*BinaryExpr) exprNode()    {}

// NodeKind names the node for diagnostics and errors.
func NodeKind(n Node) string {
	switch n.(type) {
	case *Program:
		return "Program"
	case *VariableDecl:
		return "VariableDeclaration"
	case *NumberLiteral:
		return "NumberLiteral"
	case *FloatLiteral:
		return "FloatLiteral"
	case *Variable:
		return "Variable"
	case *BinaryExpr:
		return "BinaryExpression"
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// The YAML forms below tag every node with its kind so a dumped tree can be
// read without the Go types at hand.

func (p *Program) MarshalYAML() (interface{}, error) {
	return struct {
		Type string `yaml:"type"`
		Body []Stmt `yaml:"body"`
	}{NodeKind(p), p.Body}, nil
}

func (d *VariableDecl) MarshalYAML() (interface{}, error) {
	return struct {
		Type     string   `yaml:"type"`
		Name     string   `yaml:"name"`
		DataType DataType `yaml:"dataType"`
	}{NodeKind(d), d.Name, d.DataType}, nil
}

func (n *NumberLiteral) MarshalYAML() (interface{}, error) {
	return struct {
		Type  string `yaml:"type"`
		Value int64  `yaml:"value"`
	}{NodeKind(n), n.Value}, nil
}

func (f *FloatLiteral) MarshalYAML() (interface{}, error) {
	return struct {
		Type  string `yaml:"type"`
		Value string `yaml:"value"`
	}{NodeKind(f), strconv.FormatFloat(f.Value, 'g', -1, 64)}, nil
}

func (v *Variable) MarshalYAML() (interface{}, error) {
	return struct {
		Type string `yaml:"type"`
		Name string `yaml:"name"`
	}{NodeKind(v), v.Name}, nil
}

func (b *BinaryExpr) MarshalYAML() (interface{}, error) {
	return struct {
		Type     string   `yaml:"type"`
		Operator BinaryOp `yaml:"operator"`
		Left     Expr     `yaml:"left"`
		Right    Expr     `yaml:"right"`
	}{NodeKind(b), b.Operation, b.Left, b.Right}, nil
}
