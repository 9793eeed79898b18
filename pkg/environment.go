package vex

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment is the single flat scope a program runs in.
type Environment struct {
	vals  map[string]Value
	types map[string]DataType
}

func NewEnvironment() *Environment {
	return &Environment{
		vals:  make(map[string]Value),
		types: make(map[string]DataType),
	}
}

// Declare binds name to the zero value of t, replacing any earlier binding.
func (e *Environment) Declare(name string, t DataType) {
	e.vals[name] = zeroValue(t)
	e.types[name] = t
}

func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.vals[name]
	return v, ok
}

// TypeOf returns the declared type of name.
func (e *Environment) TypeOf(name string) (DataType, bool) {
	t, ok := e.types[name]
	return t, ok
}

// Set stores v under an already declared name.
func (e *Environment) Set(name string, v Value) error {
	if _, ok := e.vals[name]; !ok {
		return &RuntimeError{Kind: UndefinedVariable, Subject: name}
	}

	if _, ok := AsFloat(v); !ok {
		return &RuntimeError{Kind: NonNumericOperand, Subject: ValueKind(v)}
	}

	e.vals[name] = v
	return nil
}

func (e *Environment) Len() int {
	return len(e.vals)
}

// Names returns the bound names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vals))
	for k := range e.vals {
		names = append(names, k)
	}

	sort.Strings(names)
	return names
}

// Map returns a copy of the bindings.
func (e *Environment) Map() map[string]Value {
	m := make(map[string]Value, len(e.vals))
	for k, v := range e.vals {
		m[k] = v
	}

	return m
}

func (e *Environment) String() string {
	var str strings.Builder
	str.WriteString("{")

	for i, name := range e.Names() {
		str.WriteString(name)
		str.WriteString(": ")
		str.WriteString(e.vals[name].String())

		if i != len(e.vals)-1 {
			str.WriteString(", ")
		}
	}
	str.WriteString("}")

	return str.String()
}

// MarshalYAML emits the bindings as a mapping sorted by name.
func (e *Environment) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range e.Names() {
		var val yaml.Node
		if err := val.Encode(e.vals[name]); err != nil {
			return nil, err
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&val,
		)
	}

	return node, nil
}
