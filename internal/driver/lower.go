package driver

import (
	"interlit/internal/ast"
	"interlit/internal/diag"
	"interlit/internal/interp"
	"interlit/internal/lexer"
	"interlit/internal/parser"
	"interlit/internal/source"
)

// LoweredLiteral pairs one interpolation literal with its lowered argument
// list.
type LoweredLiteral struct {
	Lit  interp.Literal
	Args []interp.Argument
}

// FileResult is the outcome of running the pipeline over one file.
type FileResult struct {
	Path    string
	FileID  source.FileID
	Exprs   []*ast.Expr
	Lowered []LoweredLiteral
	Bag     *diag.Bag
}

// LowerFile runs the full per-file pipeline: lex, parse, then lower every
// interpolation literal in the tree. Literals found in unsanctioned
// positions surface as IllegalContext; the rest of the file still lowers.
func LowerFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) FileResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	rep := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: rep})
	p := parser.New(lx, parser.Options{Reporter: rep})
	exprs := p.ParseProgram()

	res := FileResult{
		Path:   file.Path,
		FileID: fileID,
		Exprs:  exprs,
		Bag:    bag,
	}

	typeFn, exprFn := parser.Hooks()
	parsers := interp.GroupParsers{Type: typeFn, Expr: exprFn}
	for _, e := range exprs {
		lowerInterps(file, e, parsers, &res)
	}
	return res
}

// lowerInterps walks an expression tree in source order, lowering every
// interpolation literal it finds. Literals nested inside a group's parsed
// expression are handled by recursing into the lowered arguments, so a
// literal buried under a sub-expression still gets its context checked.
func lowerInterps(file *source.File, e *ast.Expr, parsers interp.GroupParsers, res *FileResult) {
	if e == nil {
		return
	}
	if e.Kind == ast.ExprInterp {
		lit := interp.Literal{
			File:    file,
			Kind:    e.Interp.Kind,
			Body:    e.Interp.BodySpan,
			Context: e.Interp.Context,
		}
		args, d := interp.Lower(lit, parsers)
		if d != nil {
			res.Bag.Add(*d)
			return
		}
		res.Lowered = append(res.Lowered, LoweredLiteral{Lit: lit, Args: args})
		for _, a := range args {
			if a.Kind == interp.ArgExpr {
				lowerInterps(file, a.Expr, parsers, res)
			}
		}
		return
	}

	lowerInterps(file, e.X, parsers, res)
	lowerInterps(file, e.Y, parsers, res)
	lowerInterps(file, e.Callee, parsers, res)
	for _, arg := range e.Args {
		lowerInterps(file, arg, parsers, res)
	}
}
