package vex

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	logger *slog.Logger
}

type Option func(*options)

// WithLogger sends per-node evaluation traces to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Compiler runs the whole pipeline over source text.
type Compiler struct {
	opts []Option
}

func NewCompiler(opts ...Option) *Compiler {
	return &Compiler{opts: opts}
}

// Run lexes, parses and evaluates src, returning the final environment.
func (c *Compiler) Run(src string) (*Environment, error) {
	program, err := Parse(Lex(src))
	if err != nil {
		return nil, err
	}

	return Evaluate(program, c.opts...)
}

func (c *Compiler) RunFile(filename string) (*Environment, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return c.RunFromReader(f)
}

func (c *Compiler) RunFromReader(reader io.Reader) (*Environment, error) {
	lexer, err := NewLexerFromReader(reader)
	if err != nil {
		return nil, err
	}

	program, err := Parse(lexer.All())
	if err != nil {
		return nil, err
	}

	return Evaluate(program, c.opts...)
}

// EmitIR lexes, parses and lowers src, returning the LLVM assembly.
func (c *Compiler) EmitIR(src string) (string, error) {
	program, err := Parse(Lex(src))
	if err != nil {
		return "", err
	}

	mod, err := Compile(program)
	if err != nil {
		return "", err
	}

	return mod.String(), nil
}

func Run(src string, opts ...Option) (*Environment, error) {
	return NewCompiler(opts...).Run(src)
}

func EmitIR(src string) (string, error) {
	return NewCompiler().EmitIR(src)
}
