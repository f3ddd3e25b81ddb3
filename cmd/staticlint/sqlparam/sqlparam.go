// Package sqlparam содержит анализатор, который требует передавать в
// Exec/Query/QueryRow только константный текст SQL. Значения должны идти
// через плейсхолдеры, а не через склейку строк.
package sqlparam

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer запрещает неконстантный SQL в вызовах database/sql и pgx.
var Analyzer = &analysis.Analyzer{
	Name:     "sqlparam",
	Doc:      "требует константный SQL в Exec/Query/QueryRow (database/sql, pgx)",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var queryMethods = map[string]bool{
	"Exec":            true,
	"ExecContext":     true,
	"Query":           true,
	"QueryContext":    true,
	"QueryRow":        true,
	"QueryRowContext": true,
}

// NewAnalyzer возвращает анализатор sqlparam.
func NewAnalyzer() *analysis.Analyzer {
	return Analyzer
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || !queryMethods[sel.Sel.Name] {
			return
		}

		fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
		if !ok || fn.Pkg() == nil || !isSQLPackage(fn.Pkg().Path()) {
			return
		}

		idx := 0
		if len(call.Args) > 0 && isContext(pass.TypesInfo.TypeOf(call.Args[0])) {
			idx = 1
		}
		if len(call.Args) <= idx {
			return
		}

		arg := call.Args[idx]
		if tv, ok := pass.TypesInfo.Types[arg]; ok && tv.Value != nil {
			return
		}
		pass.Reportf(arg.Pos(), "SQL text passed to %s is not a constant, use placeholders", sel.Sel.Name)
	})
	return nil, nil
}

func isSQLPackage(path string) bool {
	return path == "database/sql" || strings.HasPrefix(path, "github.com/jackc/pgx/v5")
}

func isContext(t types.Type) bool {
	if t == nil {
		return false
	}
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == "context" && obj.Name() == "Context"
}
