package vex

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnvironment(t *testing.T) {
	env := NewEnvironment()

	_, ok := env.Get("a")
	assert.False(t, ok)

	env.Declare("b", DataFloat)
	env.Declare("a", DataInt)
	require.NoError(t, env.Set("a", IntValue(1)))
	require.NoError(t, env.Set("b", FloatValue(2.5)))

	v, ok := env.Get("a")
	assert.True(t, ok)
	assert.Equal(t, IntValue(1), v)

	typ, ok := env.TypeOf("b")
	assert.True(t, ok)
	assert.Equal(t, DataFloat, typ)

	assert.Equal(t, []string{"a", "b"}, env.Names())
	assert.Equal(t, "{a: 1, b: 2.5}", env.String())
	assert.Equal(t, 2, env.Len())
}

func TestEnvironmentSetErrors(t *testing.T) {
	env := NewEnvironment()

	var runtimeErr *RuntimeError
	err := env.Set("a", IntValue(1))
	require.True(t, errors.As(err, &runtimeErr))
	assert.Equal(t, UndefinedVariable, runtimeErr.Kind)

	env.Declare("a", DataInt)
	err = env.Set("a", env)
	require.True(t, errors.As(err, &runtimeErr))
	assert.Equal(t, NonNumericOperand, runtimeErr.Kind)
}

func TestEnvironmentYAML(t *testing.T) {
	env, err := Run(sampleProgram)
	require.NoError(t, err)

	out, err := yaml.Marshal(env)
	require.NoError(t, err)

	assert.Equal(t, `a: 10
b: 5
difference: 5
product: 50
quotient: 2
sum: 15
`, string(out))
}

func TestProgramYAML(t *testing.T) {
	out, err := yaml.Marshal(mustParse(t, "var a: int; a = b + 1.5;"))
	require.NoError(t, err)

	var tree map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &tree))
	assert.Equal(t, "Program", tree["type"])

	body := tree["body"].([]interface{})
	require.Len(t, body, 2)

	decl := body[0].(map[string]interface{})
	assert.Equal(t, "VariableDeclaration", decl["type"])
	assert.Equal(t, "a", decl["name"])
	assert.Equal(t, "int", decl["dataType"])

	assign := body[1].(map[string]interface{})
	assert.Equal(t, "BinaryExpression", assign["type"])
	assert.Equal(t, "=", assign["operator"])

	right := assign["right"].(map[string]interface{})
	assert.Equal(t, "+", right["operator"])
	assert.Equal(t, map[string]interface{}{"type": "Variable", "name": "b"}, right["left"])
	assert.Equal(t, map[string]interface{}{"type": "FloatLiteral", "value": "1.5"}, right["right"])
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "42", IntValue(42).String())
	assert.Equal(t, "2.5", FloatValue(2.5).String())
	assert.Equal(t, "+Inf", FloatValue(math.Inf(1)).String())
	assert.Equal(t, "int", ValueKind(IntValue(1)))
	assert.Equal(t, "float", ValueKind(FloatValue(1)))
	assert.Equal(t, "environment", ValueKind(NewEnvironment()))
}
