package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"go.vex.dev/internal/config"
	"go.vex.dev/internal/logs"
	"go.vex.dev/pkg"
)

const (
	prompt = "vex> "
	banner = "vex REPL. Ctrl+D exits. Commands: :env, :reset, :quit"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vex", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", config.DefaultFile, "configuration file")
	emit := fs.String("emit", "", "output: tokens, ast, env or ir")
	trace := fs.Bool("trace", false, "log every evaluated node")
	level := fs.String("log-level", "", "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if *emit != "" {
		cfg.Emit = config.Emit(*emit)
	}
	if *level != "" {
		cfg.Log.Level = *level
	}
	if *trace {
		cfg.Trace = true
	}
	if cfg.Trace {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger, closeLog, err := logs.Logger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer closeLog()

	var opts []vex.Option
	if cfg.Trace {
		opts = append(opts, vex.WithLogger(logger))
	}

	if fs.NArg() == 0 && term.IsTerminal(int(stdin.Fd())) {
		return repl(cfg, logger, stdout, opts)
	}

	src, err := readSource(fs.Arg(0), stdin)
	if err != nil {
		logger.Error("read source", "error", err)
		return 1
	}

	if err := emitOutput(cfg.Emit, src, stdout, opts); err != nil {
		logger.Error("run", "error", err)
		return 1
	}

	return 0
}

func readSource(path string, stdin io.Reader) (string, error) {
	var r io.Reader = stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()

		r = f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func emitOutput(emit config.Emit, src string, w io.Writer, opts []vex.Option) error {
	tokens := vex.Lex(src)
	if emit == config.EmitTokens {
		return writeYAML(w, vex.Values(tokens))
	}

	program, err := vex.Parse(tokens)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	switch emit {
	case config.EmitAST:
		return writeYAML(w, program)
	case config.EmitIR:
		mod, err := vex.Compile(program)
		if err != nil {
			return fmt.Errorf("compile: %w", err)
		}

		_, err = io.WriteString(w, mod.String())
		return err
	default:
		env, err := vex.Evaluate(program, opts...)
		if err != nil {
			return fmt.Errorf("evaluate: %w", err)
		}

		return writeYAML(w, env)
	}
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func repl(cfg *config.Config, logger *slog.Logger, w io.Writer, opts []vex.Option) int {
	fmt.Fprintln(w, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.REPL.History); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, err := os.Create(cfg.REPL.History); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	in := vex.NewInterpreter(opts...)
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(w)
			return 0
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		switch line {
		case ":quit":
			return 0
		case ":env":
			fmt.Fprintln(w, in.Env())
			continue
		case ":reset":
			in.Reset()
			continue
		}

		if err := evalLine(in, line, w); err != nil {
			logger.Error("eval", "error", err)
		}
	}
}

// evalLine runs every statement on the line and prints the value of the last.
func evalLine(in *vex.Interpreter, line string, w io.Writer) error {
	program, err := vex.Parse(vex.Lex(line))
	if err != nil {
		return err
	}

	var last vex.Value
	for _, stmt := range program.Body {
		last, err = in.Exec(stmt)
		if err != nil {
			return err
		}
	}

	if last != nil {
		fmt.Fprintln(w, last)
	}

	return nil
}
