package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"cc0/ast"
	"cc0/codegen"
	"cc0/diag"
	"cc0/emitter"
	"cc0/lexer"
	"cc0/parser"
	"cc0/token"
)

// compileCmd implements spec.md §6's batch-compiler CLI surface,
// following informatter-nilan/cmd_run.go's subcommands.Command shape
// (Name/Synopsis/Usage/SetFlags/Execute) and the flag semantics of
// original_source/main.py's process(): --all implies the three dump
// flags, and when none of -l/-p/-cg fire the compiler proceeds straight
// to emission.
type compileCmd struct {
	lex     bool
	parse   bool
	codegen bool
	all     bool
}

func (*compileCmd) Name() string     { return "compile" }
func (*compileCmd) Synopsis() string { return "Compile a C-subset source file to a native executable" }
func (*compileCmd) Usage() string {
	return `compile [-l] [-p] [-cg] [--all] <input_file>:
  Compile input_file. With no flags, writes ./bin/output.s and invokes
  nasm and gcc to produce ./bin/out.exe. Any dump flag prints that phase's
  output to stdout instead of proceeding to emission.
`
}

func (c *compileCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.lex, "l", false, "print tokens from lexical analysis")
	f.BoolVar(&c.lex, "lex", false, "print tokens from lexical analysis")
	f.BoolVar(&c.parse, "p", false, "print the parsed abstract syntax tree")
	f.BoolVar(&c.parse, "parse", false, "print the parsed abstract syntax tree")
	f.BoolVar(&c.codegen, "cg", false, "print generated assembly")
	f.BoolVar(&c.codegen, "codegen", false, "print generated assembly")
	f.BoolVar(&c.all, "all", false, "enable all dump phases")
}

func (c *compileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one input file")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	if c.all {
		c.lex, c.parse, c.codegen = true, true, true
	}

	if err := run(path, c); err != nil {
		reportError(path, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// reportError follows original_source/main.py's distinction between a
// missing source file and every other compilation failure, reported
// through diag.Fatalf per spec.md §7's single-stderr-line contract.
func reportError(path string, err error) {
	if os.IsNotExist(err) {
		diag.Fatalf("[ERROR]: file %q not found", path)
		return
	}
	diag.Fatalf("error during compilation: %s", err)
}

func run(path string, c *compileCmd) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	tokens, err := lexer.New(string(src)).Scan()
	if err != nil {
		return err
	}
	if c.lex {
		diag.Section("TOKENS", joinTokens(tokens))
	}

	prog, err := parser.Parse(tokens)
	if err != nil {
		return err
	}
	if c.parse {
		diag.Section("ABSTRACT SYNTAX TREE", dumpProgram(prog))
	}

	assembly, err := codegen.Generate(prog)
	if err != nil {
		return err
	}
	if c.codegen {
		diag.Section("ASSEMBLY GENERATED", assembly)
	}

	if c.lex || c.parse || c.codegen {
		return nil
	}
	return emitter.Emit(assembly)
}

func joinTokens(tokens []token.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// dumpProgram is a minimal debug-only AST pretty-printer, per spec.md
// §1's "pretty-printer for the AST used only for debugging" note,
// grounded on informatter-nilan/parser/printer.go's role (a Visitor-
// based dump reachable only from a CLI dump flag, never from codegen).
func dumpProgram(prog *ast.Program) string {
	var b strings.Builder
	for _, fn := range prog.Functions {
		if fn.IsDefinition() {
			fmt.Fprintf(&b, "function %s(%d params)\n", fn.Name, len(fn.Params))
		} else {
			fmt.Fprintf(&b, "declare %s(%d params)\n", fn.Name, len(fn.Params))
		}
	}
	return b.String()
}
