// Package docsource collects the doc comments of Go declarations so commands can be
// documented where they are implemented.
//
// Type declarations are keyed by type name, methods by "Type.Method" and functions by
// their name, which is what gohelp.Registry.RegisterCommand looks up.
package docsource

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/napalu/gohelp/errs"
)

// Docs maps declaration symbols to their doc comment text
type Docs struct {
	docs map[string]string
}

// New returns an empty Docs
func New() *Docs {
	return &Docs{docs: make(map[string]string)}
}

// Doc returns the doc comment of symbol
func (d *Docs) Doc(symbol string) (string, bool) {
	doc, ok := d.docs[symbol]
	return doc, ok
}

// Set records doc for symbol, replacing any previous value
func (d *Docs) Set(symbol, doc string) {
	d.docs[symbol] = doc
}

// Len returns the number of documented symbols
func (d *Docs) Len() int {
	return len(d.docs)
}

// Symbols returns the documented symbols in sorted order
func (d *Docs) Symbols() []string {
	symbols := make([]string, 0, len(d.docs))
	for s := range d.docs {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	return symbols
}

// ParseSource extracts the doc comments of a single file. src may be nil, a string,
// a []byte or an io.Reader, as accepted by go/parser.
func ParseSource(filename string, src any) (*Docs, error) {
	d := New()
	if err := d.parseFile(token.NewFileSet(), filename, src); err != nil {
		return nil, err
	}

	return d, nil
}

// ParseFiles extracts the doc comments of several files. Later files win when a symbol
// is documented twice.
func ParseFiles(files ...string) (*Docs, error) {
	d := New()
	fset := token.NewFileSet()
	for _, file := range files {
		if err := d.parseFile(fset, file, nil); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// ParseDir extracts the doc comments of the Go files of dir, test files excluded
func ParseDir(dir string) (*Docs, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errs.ErrParsingSource.WithArgs(dir).Wrap(err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	return ParseFiles(files...)
}

func (d *Docs) parseFile(fset *token.FileSet, filename string, src any) error {
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return errs.ErrParsingSource.WithArgs(filename).Wrap(err)
	}

	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			if decl.Tok != token.TYPE {
				continue
			}
			for _, spec := range decl.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(decl.Specs) == 1 {
					doc = decl.Doc
				}
				if doc != nil {
					d.Set(ts.Name.Name, doc.Text())
				}
			}
		case *ast.FuncDecl:
			if decl.Doc == nil {
				continue
			}
			name := decl.Name.Name
			if recv := receiverName(decl); recv != "" {
				name = recv + "." + name
			}
			d.Set(name, decl.Doc.Text())
		}
	}

	return nil
}

// receiverName returns the base type name of a method receiver, "" for functions
func receiverName(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return ""
	}

	expr := fn.Recv.List[0].Type
	for {
		switch t := expr.(type) {
		case *ast.StarExpr:
			expr = t.X
		case *ast.IndexExpr:
			expr = t.X
		case *ast.IndexListExpr:
			expr = t.X
		case *ast.ParenExpr:
			expr = t.X
		case *ast.Ident:
			return t.Name
		default:
			return ""
		}
	}
}
