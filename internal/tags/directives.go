package tags

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Comment directives recognised on Go declarations.
const (
	tagDirective  = "//bdd:tag "
	tagsDirective = "//bdd:tags "
)

// ScanDirectives walks root for Go sources and registers //bdd:tag and
// //bdd:tags comment directives:
//
//	//bdd:tag pillar:Car sales        on a type   -> case "pkg.Type"
//	//bdd:tags pillar:cars, A tag     on a method -> case "pkg.Receiver", method name
//	//bdd:tag story:Checkout          on a func   -> case "pkg", func name
//
// Files that fail to parse are skipped and reported together.
func ScanDirectives(root string, registry *Registry) (int, error) {
	var errs *multierror.Error
	found := 0
	fset := token.NewFileSet()
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != root && skipDir(entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(entry.Name(), ".go") {
			return nil
		}
		file, parseErr := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if parseErr != nil {
			errs = multierror.Append(errs, fmt.Errorf("parse %s: %w", path, parseErr))
			return nil
		}
		found += registerFile(file, registry)
		return nil
	})
	if err != nil {
		return found, fmt.Errorf("walk %q: %w", root, err)
	}
	return found, errs.ErrorOrNil()
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "vendor" || name == "testdata" || name == "node_modules"
}

// registerFile records the directives of one file and returns how many
// annotations were registered.
func registerFile(file *ast.File, registry *Registry) int {
	pkg := file.Name.Name
	count := 0
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := typeSpec.Doc
				if doc == nil && len(d.Specs) == 1 {
					doc = d.Doc
				}
				annotations := parseDirectives(doc)
				if len(annotations) == 0 {
					continue
				}
				registry.Annotate(pkg+"."+typeSpec.Name.Name, annotations...)
				count += len(annotations)
			}
		case *ast.FuncDecl:
			annotations := parseDirectives(d.Doc)
			if len(annotations) == 0 {
				continue
			}
			testCase := pkg
			if receiver := receiverName(d); receiver != "" {
				testCase = pkg + "." + receiver
			}
			registry.AnnotateMethod(testCase, d.Name.Name, annotations...)
			count += len(annotations)
		}
	}
	return count
}

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
		case *ast.Ident:
			return t.Name
		default:
			return ""
		}
	}
}

// parseDirectives reads raw comment lines; ast.CommentGroup.Text drops
// directive comments, so the list is scanned directly.
func parseDirectives(doc *ast.CommentGroup) []Annotation {
	if doc == nil {
		return nil
	}
	annotations := make([]Annotation, 0)
	for _, comment := range doc.List {
		text := strings.TrimSpace(comment.Text)
		switch {
		case strings.HasPrefix(text, tagsDirective):
			values := strings.Split(strings.TrimPrefix(text, tagsDirective), ",")
			annotations = append(annotations, WithTagValuesOf(values))
		case strings.HasPrefix(text, tagDirective):
			annotations = append(annotations, WithTag{Value: strings.TrimPrefix(text, tagDirective)})
		}
	}
	return annotations
}
