package vex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.vex.dev/internal/test"
)

func TestParser(t *testing.T) {
	cases := []struct {
		data   string
		expect []Stmt
	}{
		{
			"var a: int;",
			[]Stmt{
				&VariableDecl{Name: "a", DataType: DataInt},
			},
		},
		{
			"var quotient: float;",
			[]Stmt{
				&VariableDecl{Name: "quotient", DataType: DataFloat},
			},
		},
		{
			"a = 10;",
			[]Stmt{
				&BinaryExpr{
					Operation: BinaryAssign,
					Left:      &Variable{Name: "a"},
					Right:     &NumberLiteral{Value: 10},
				},
			},
		},
		{
			"x = 2.5;",
			[]Stmt{
				&BinaryExpr{
					Operation: BinaryAssign,
					Left:      &Variable{Name: "x"},
					Right:     &FloatLiteral{Value: 2.5},
				},
			},
		},
		{
			"sum = a + b;",
			[]Stmt{
				&BinaryExpr{
					Operation: BinaryAssign,
					Left:      &Variable{Name: "sum"},
					Right: &BinaryExpr{
						Operation: BinaryAddition,
						Left:      &Variable{Name: "a"},
						Right:     &Variable{Name: "b"},
					},
				},
			},
		},
		{
			// Chains nest to the right
			"a - b - c;",
			[]Stmt{
				&BinaryExpr{
					Operation: BinarySubtraction,
					Left:      &Variable{Name: "a"},
					Right: &BinaryExpr{
						Operation: BinarySubtraction,
						Left:      &Variable{Name: "b"},
						Right:     &Variable{Name: "c"},
					},
				},
			},
		},
		{
			"a = 10 b = 5",
			[]Stmt{
				&BinaryExpr{
					Operation: BinaryAssign,
					Left:      &Variable{Name: "a"},
					Right:     &NumberLiteral{Value: 10},
				},
				&BinaryExpr{
					Operation: BinaryAssign,
					Left:      &Variable{Name: "b"},
					Right:     &NumberLiteral{Value: 5},
				},
			},
		},
		{
			"5; a; 1.5;",
			[]Stmt{
				&NumberLiteral{Value: 5},
				&Variable{Name: "a"},
				&FloatLiteral{Value: 1.5},
			},
		},
		{
			"int = 1;",
			[]Stmt{
				&BinaryExpr{
					Operation: BinaryAssign,
					Left:      &Variable{Name: "int"},
					Right:     &NumberLiteral{Value: 1},
				},
			},
		},
		{
			"var int: float; int = 1.5;",
			[]Stmt{
				&VariableDecl{Name: "int", DataType: DataFloat},
				&BinaryExpr{
					Operation: BinaryAssign,
					Left:      &Variable{Name: "int"},
					Right:     &FloatLiteral{Value: 1.5},
				},
			},
		},
		{
			";;;",
			nil,
		},
		{
			"",
			nil,
		},
	}

	for _, c := range cases {
		got, err := Parse(Lex(c.data))
		require.NoError(t, err, c.data)

		assert.Equal(t, &Program{Body: c.expect}, got, c.data)
	}
}

func TestParserErrors(t *testing.T) {
	cases := []struct {
		data   string
		expect *SyntaxError
	}{
		{
			"var a int;",
			&SyntaxError{Kind: MissingColon, Token: "int", Expected: "':'"},
		},
		{
			"var a: string;",
			&SyntaxError{Kind: UnexpectedToken, Token: "string", Expected: "int or float"},
		},
		{
			"var 5: int;",
			&SyntaxError{Kind: UnexpectedToken, Token: "5", Expected: "variable name"},
		},
		{
			"a = ;",
			&SyntaxError{Kind: UnexpectedToken, Token: ";"},
		},
		{
			"a = var b: int;",
			&SyntaxError{Kind: UnexpectedToken, Token: "var"},
		},
		{
			"+ 1",
			&SyntaxError{Kind: UnexpectedToken, Token: "+"},
		},
		{
			"1 + 2",
			&SyntaxError{Kind: UnexpectedToken, Token: "+"},
		},
		{
			"a @ b",
			&SyntaxError{Kind: UnexpectedToken, Token: "@"},
		},
		{
			"{",
			&SyntaxError{Kind: UnexpectedToken, Token: "{"},
		},
		{
			"a =",
			&SyntaxError{Kind: UnexpectedEOF},
		},
		{
			"var a",
			&SyntaxError{Kind: UnexpectedEOF, Expected: "':'"},
		},
		{
			"var a:",
			&SyntaxError{Kind: UnexpectedEOF, Expected: "int or float"},
		},
		{
			"n = 99999999999999999999;",
			&SyntaxError{Kind: UnexpectedToken, Token: "99999999999999999999", Expected: "integer literal"},
		},
	}

	for _, c := range cases {
		got, err := Parse(Lex(c.data))
		assert.Nil(t, got, c.data)

		var syntaxErr *SyntaxError
		require.True(t, errors.As(err, &syntaxErr), c.data)
		assert.Equal(t, c.expect, syntaxErr, c.data)
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := Parse(Lex("var a int;"))
	assert.EqualError(t, err, "syntax error: expected ':' but got 'int'")

	_, err = Parse(Lex("a = ;"))
	assert.EqualError(t, err, "syntax error: unexpected token ';'")

	_, err = Parse(Lex("a ="))
	assert.EqualError(t, err, "syntax error: unexpected end of input")
}

func TestParserRandomPrograms(t *testing.T) {
	for i := 0; i < 20; i++ {
		data := test.GetRandomProgram(8)

		prog, err := Parse(Lex(data))
		require.NoError(t, err, data)
		assert.Len(t, prog.Body, 8*3, data)

		for _, stmt := range prog.Body {
			if bin, ok := stmt.(*BinaryExpr); ok {
				assert.NotNil(t, bin.Right, data)
			}
		}
	}
}
