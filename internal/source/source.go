// Package source recovers the text of the arguments passed to a check, so
// failure messages can quote the expressions the way they were written.
package source

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"strings"
	"sync"
)

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
	err  error
}

var (
	mu    sync.Mutex
	files = make(map[string]*parsedFile)
)

// Caller returns the file and line of the first frame on the current stack
// whose function does not belong to the package with the given import path.
func Caller(pkgPath string) (string, int, bool) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	prefix := pkgPath + "."
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, prefix) {
			return frame.File, frame.Line, true
		}

		if !more {
			return "", 0, false
		}
	}
}

// CallArgs returns the source text of the arguments of the call to funcName
// found at file:line. When several calls match, the innermost one wins.
func CallArgs(file string, line int, funcName string) ([]string, error) {
	pf := load(file)
	if pf.err != nil {
		return nil, pf.err
	}

	var found *ast.CallExpr
	var foundSpan int
	ast.Inspect(pf.file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || calleeName(call.Fun) != funcName {
			return true
		}

		start := pf.fset.Position(call.Pos()).Line
		end := pf.fset.Position(call.End()).Line
		if line < start || line > end {
			return true
		}

		// Inspect visits outer calls first, so on a tie the nested call wins.
		if span := end - start; found == nil || span <= foundSpan {
			found, foundSpan = call, span
		}
		return true
	})

	if found == nil {
		return nil, fmt.Errorf("no call to %s at %s:%d", funcName, file, line)
	}

	args := make([]string, len(found.Args))
	for i, arg := range found.Args {
		args[i] = pf.text(arg)
	}

	return args, nil
}

func load(file string) *parsedFile {
	mu.Lock()
	defer mu.Unlock()

	if pf, ok := files[file]; ok {
		return pf
	}

	pf := &parsedFile{fset: token.NewFileSet()}
	pf.src, pf.err = os.ReadFile(file)
	if pf.err == nil {
		pf.file, pf.err = parser.ParseFile(pf.fset, file, pf.src, 0)
	}

	files[file] = pf
	return pf
}

// Returns the node's source with every run of whitespace collapsed to one
// space.
func (pf *parsedFile) text(n ast.Node) string {
	start := pf.fset.Position(n.Pos()).Offset
	end := pf.fset.Position(n.End()).Offset
	return strings.Join(strings.Fields(string(pf.src[start:end])), " ")
}

func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	case *ast.ParenExpr:
		return calleeName(f.X)
	default:
		return ""
	}
}
