package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/token"
	"strings"
	"unicode"

	"golang.org/x/tools/go/packages"
)

// Tag is the build tag that guards ters directive files. Files carrying
// markers must be constrained by "//go:build ters" so that the regular build
// sees only the generated copy.
const Tag = "ters"

// Marker names recognized in "//ters:NAME" comments.
const (
	MarkerAccessors = "accessors" // marks a struct type declaration
	MarkerGet       = "get"       // marks a field for a getter
	MarkerSet       = "set"       // marks a field for a setter
)

const markerPrefix = "//" + Tag + ":"

// Marker is one "//ters:NAME" comment. Text after the name is ignored, so
// markers may carry trailing notes.
type Marker struct {
	Name    string
	comment *ast.Comment
}

func (m Marker) Pos() token.Pos { return m.comment.Pos() }
func (m Marker) End() token.Pos { return m.comment.End() }

func (m Marker) String() string { return markerPrefix + m.Name }

// AsMarker parses the comment as a ters marker. It returns false for ordinary
// comments.
func AsMarker(c *ast.Comment) (Marker, bool) {
	rest, ok := strings.CutPrefix(c.Text, markerPrefix)
	if !ok {
		return Marker{}, false
	}

	if i := strings.IndexFunc(rest, unicode.IsSpace); i != -1 {
		rest = rest[:i]
	}
	return Marker{Name: rest, comment: c}, true
}

// markersIn collects the markers of the given comment groups in source order.
// Nil groups are allowed.
func markersIn(groups ...*ast.CommentGroup) []Marker {
	var markers []Marker
	for _, group := range groups {
		if group == nil {
			continue
		}
		for _, c := range group.List {
			if m, ok := AsMarker(c); ok {
				markers = append(markers, m)
			}
		}
	}
	return markers
}

// Parser parses an AST of the underlying package to collect annotated records.
type Parser struct {
	pkg *packages.Package

	// consumed tracks marker comments that have been attributed to a record or
	// reported already. [Parser.Validate] reports the rest as misplaced.
	consumed map[*ast.Comment]bool
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg, consumed: make(map[*ast.Comment]bool)}, nil
}

// TersGoFiles returns the Go files that have a "//go:build ters" constraint.
func (p *Parser) TersGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.pkg.Syntax {
		if HasGoBuildTers(file) {
			files = append(files, file)
		}
	}
	return files
}

// HasGoBuildTers checks if the file has a "//go:build ters" constraint.
func HasGoBuildTers(file *ast.File) bool {
	ok := false
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if constraint.IsGoBuild(comment.Text) {
				expr, _ := constraint.Parse(comment.Text)
				expr.Eval(func(tag string) bool {
					if tag == Tag {
						ok = true
					}
					return true
				})
			}
		}
	}
	return ok
}
