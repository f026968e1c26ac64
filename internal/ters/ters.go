package tersinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"github.com/AdinAck/ters/internal/codefmt"
	"github.com/AdinAck/ters/internal/ters/gen"
	"github.com/AdinAck/ters/internal/ters/parse"
)

// Ters generates accessor code for the target package. Call [Ters.Build] and
// then [Ters.Generate] to get the generated code. All potential errors are
// returned by Build. Once Build succeeds, Generate never fails.
type Ters struct {
	p   *parse.Parser
	buf *bytes.Buffer
	w   *codefmt.Writer

	records   *parse.Records
	accessors map[*parse.Record][]gen.Accessor
}

// New creates a new [Ters] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Ters, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Ters{
		p:   parser,
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
	}, nil
}

// Build prepares code generation by parsing markers and synthesizing
// accessors. All potential errors are returned by this method. It must be
// called before [Ters.Generate]. Any definition error fails the whole package;
// no partial output is ever produced.
func (t *Ters) Build() error {
	records, errs := t.p.ParseRecords()
	errs = errors.Join(errs, t.p.Validate())
	if errs != nil {
		return errs
	}

	t.records = records
	if records.Len() == 0 {
		// No annotated records found
		return nil
	}

	t.accessors = make(map[*parse.Record][]gen.Accessor)
	for rec := range records.Range() {
		t.accessors[rec] = gen.Synthesize(rec)
	}
	return nil
}

// Generate generates accessor code for the package. It must be called after
// [Ters.Build] succeeds. It returns nil when the package has no annotated
// records.
func (t *Ters) Generate() []byte {
	if t.records == nil || t.records.Len() == 0 {
		return nil
	}

	t.mergeCode()
	t.writeAccessorCode()
	return t.frameCode()
}

// mergeCode copies the declarations from the source files tagged with
// "//go:build ters" so that the regular build sees them. Marker comments are
// stripped; the record definitions themselves stay unchanged.
func (t *Ters) mergeCode() {
	for _, file := range t.p.TersGoFiles() {
		name := filepath.Base(t.p.Pkg().Fset.File(file.Pos()).Name())
		comments := stripMarkers(file)
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			if first {
				fmt.Fprintf(t.buf, "// %s:\n\n", name)
				first = false
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(t.w, stripDeclMarkers(decl))

			printer.Fprint(t.buf, t.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: comments,
			})
			fmt.Fprintf(t.buf, "\n\n")
		}
	}
}

// stripMarkers filters the file's comments down to the ones that should
// survive into the generated output. The original comment groups are not
// modified.
func stripMarkers(file *ast.File) []*ast.CommentGroup {
	var groups []*ast.CommentGroup
	for _, group := range file.Comments {
		if g := stripMarkerGroup(group); g != nil {
			groups = append(groups, g)
		}
	}
	return groups
}

// stripMarkerGroup filters marker comments out of one group. It returns nil
// when only markers remain, and the group itself when nothing was a marker.
func stripMarkerGroup(group *ast.CommentGroup) *ast.CommentGroup {
	if group == nil {
		return nil
	}

	var list []*ast.Comment
	for _, c := range group.List {
		if _, ok := parse.AsMarker(c); ok {
			continue
		}
		list = append(list, c)
	}

	switch {
	case len(list) == 0:
		// The group held only markers. Drop it entirely.
		return nil
	case len(list) == len(group.List):
		return group
	}
	return &ast.CommentGroup{List: list}
}

// stripDeclMarkers copies the declaration with marker-free Doc and Comment
// groups. go/printer falls back to the node-attached comments whenever the
// filtered comment list leaves nothing within the declaration's range, so a
// declaration documented by markers alone must not carry them. The original
// nodes are not modified.
func stripDeclMarkers(decl ast.Decl) ast.Decl {
	switch d := decl.(type) {
	case *ast.GenDecl:
		gen := *d
		gen.Doc = stripMarkerGroup(d.Doc)
		gen.Specs = make([]ast.Spec, len(d.Specs))
		for i, spec := range d.Specs {
			gen.Specs[i] = stripSpecMarkers(spec)
		}
		return &gen

	case *ast.FuncDecl:
		fn := *d
		fn.Doc = stripMarkerGroup(d.Doc)
		return &fn
	}
	return decl
}

func stripSpecMarkers(spec ast.Spec) ast.Spec {
	switch s := spec.(type) {
	case *ast.TypeSpec:
		ts := *s
		ts.Doc = stripMarkerGroup(s.Doc)
		ts.Comment = stripMarkerGroup(s.Comment)
		if st, ok := s.Type.(*ast.StructType); ok {
			ts.Type = stripStructMarkers(st)
		}
		return &ts

	case *ast.ValueSpec:
		vs := *s
		vs.Doc = stripMarkerGroup(s.Doc)
		vs.Comment = stripMarkerGroup(s.Comment)
		return &vs
	}
	return spec
}

func stripStructMarkers(st *ast.StructType) *ast.StructType {
	out := *st
	fields := *st.Fields
	fields.List = make([]*ast.Field, len(st.Fields.List))
	for i, f := range st.Fields.List {
		field := *f
		field.Doc = stripMarkerGroup(f.Doc)
		field.Comment = stripMarkerGroup(f.Comment)
		fields.List[i] = &field
	}
	out.Fields = &fields
	return &out
}

// writeAccessorCode writes the method declarations for every record in source
// order. Within one record, accessors follow field order with getters before
// setters.
func (t *Ters) writeAccessorCode() {
	t.w.Printf("// ters: accessors\n\n")

	for rec := range t.records.Range() {
		gen.WriteMethods(t.w, rec, t.accessors[rec])
	}
}

func (t *Ters) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !%s\n", parse.Tag)
	fmt.Fprintf(&buf, "// Code generated by github.com/AdinAck/ters%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", t.p.Pkg().Name)

	if len(t.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range t.w.Imports() {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, t.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
