package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"interlit/internal/ast"
	"interlit/internal/diagfmt"
	"interlit/internal/interp"
	"interlit/internal/lexer"
	"interlit/internal/parser"
	"interlit/internal/source"
)

var elementsCmd = &cobra.Command{
	Use:   "elements <file.il>",
	Short: "Print the scanned element sequence of every literal in a file",
	Long:  `The debugging surface: scan and classify each literal's body without lowering it, and print the resulting element sequence`,
	Args:  cobra.ExactArgs(1),
	RunE:  runElements,
}

func init() {
	elementsCmd.SilenceUsage = true
}

func runElements(cmd *cobra.Command, args []string) error {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", args[0], err)
	}
	file := fileSet.Get(fileID)

	lx := lexer.New(file, lexer.Options{})
	p := parser.New(lx, parser.Options{})
	exprs := p.ParseProgram()

	typeFn, exprFn := parser.Hooks()
	parsers := interp.GroupParsers{Type: typeFn, Expr: exprFn}

	out := cmd.OutOrStdout()
	found := 0
	var walk func(e *ast.Expr)
	walk = func(e *ast.Expr) {
		if e == nil {
			return
		}
		if e.Kind == ast.ExprInterp {
			found++
			start, _ := fileSet.Resolve(e.Interp.BodySpan)
			fmt.Fprintf(out, "%s:%d:%d: %s\n", file.Path, start.Line, start.Col, e.Interp.Kind)
			lit := interp.Literal{File: file, Kind: e.Interp.Kind, Body: e.Interp.BodySpan}
			elems, d := interp.Scan(lit, parsers)
			if d != nil {
				fmt.Fprintf(out, "  %s: %s\n", d.Code.ID(), d.Message)
				return
			}
			diagfmt.Elements(out, fileSet, elems)
			return
		}
		walk(e.X)
		walk(e.Y)
		walk(e.Callee)
		for _, arg := range e.Args {
			walk(arg)
		}
	}
	for _, e := range exprs {
		walk(e)
	}
	if found == 0 {
		fmt.Fprintln(out, "no interpolation literals found")
	}
	return nil
}
