package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/AdinAck/ters/internal/codefmt"
)

// Capability is the accessor capability of one field, classified from its
// markers. Classification checks marker presence only; order and repetition of
// markers are irrelevant.
type Capability uint8

const (
	CapGet Capability = 1 << iota
	CapSet

	CapNone Capability = 0
)

// Has reports whether the capability includes every capability of o.
func (c Capability) Has(o Capability) bool { return c&o == o }

func (c Capability) String() string {
	switch {
	case c.Has(CapGet | CapSet):
		return "get+set"
	case c.Has(CapGet):
		return "get"
	case c.Has(CapSet):
		return "set"
	}
	return "none"
}

// Field is one named field of a [Record] with its classified capability.
// Every field of the record appears here, including ones with [CapNone].
type Field struct {
	Name *ast.Ident
	Type ast.Expr
	Cap  Capability
}

func (f *Field) Pos() token.Pos { return f.Name.Pos() }

// Record is a struct type declaration marked with //ters:accessors. Fields
// keep their source order.
type Record struct {
	Name   *ast.Ident
	Spec   *ast.TypeSpec
	Struct *ast.StructType
	File   *ast.File
	Fields []*Field
}

func (r *Record) Pos() token.Pos { return r.Name.Pos() }
func (r *Record) End() token.Pos { return r.Name.End() }

// TypeParams returns the type parameter list of the record, or nil.
func (r *Record) TypeParams() *ast.FieldList { return r.Spec.TypeParams }

// Records is an ordered collection of records keyed by their positions.
type Records struct{ m *linkedhashmap.Map }

func newRecords() *Records { return &Records{m: linkedhashmap.New()} }

func (rs *Records) add(r *Record) { rs.m.Put(r.Pos(), r) }

func (rs *Records) Len() int { return rs.m.Size() }

// At returns the record declared at the given position.
func (rs *Records) At(pos token.Pos) (*Record, bool) {
	v, ok := rs.m.Get(pos)
	if !ok {
		return nil, false
	}
	return v.(*Record), true
}

// Range iterates over the records in source order.
func (rs *Records) Range() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		it := rs.m.Iterator()
		for it.Next() {
			if !yield(it.Value().(*Record)) {
				return
			}
		}
	}
}

// ParseRecords collects every //ters:accessors struct from the directive
// files. It keeps collecting after an error so that all definition errors are
// reported at once; when the returned error is non-nil the records must not be
// used for generation.
func (p *Parser) ParseRecords() (*Records, error) {
	records := newRecords()
	var errs error

	for _, file := range p.TersGoFiles() {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)
				rec, err := p.parseRecord(file, gen, ts)
				errs = errors.Join(errs, err)
				if rec != nil {
					records.add(rec)
				}
			}
		}
	}

	return records, errs
}

// parseRecord parses one type spec. It returns (nil, nil) when the type
// carries no markers at all.
func (p *Parser) parseRecord(file *ast.File, gen *ast.GenDecl, ts *ast.TypeSpec) (*Record, error) {
	groups := []*ast.CommentGroup{ts.Doc, ts.Comment}
	if len(gen.Specs) == 1 {
		// The doc of "type User struct{...}" belongs to the GenDecl, not to
		// the TypeSpec.
		groups = append(groups, gen.Doc)
	}

	markers := markersIn(groups...)
	if len(markers) == 0 {
		return nil, nil
	}

	var errs error
	marked := false
	for _, m := range markers {
		p.consume(m)

		switch m.Name {
		case MarkerAccessors:
			marked = true
		case MarkerGet, MarkerSet:
			err := codefmt.Errorf(p, ts.Name, "%s must mark a struct field", m)
			errs = errors.Join(errs, err)
		default:
			err := codefmt.Errorf(p, ts.Name, "unrecognized marker %s", m)
			errs = errors.Join(errs, err)
		}
	}

	if !marked {
		return nil, errs
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		err := codefmt.Errorf(p, ts.Name, "//%s:%s must mark a struct type; %s is not a struct", Tag, MarkerAccessors, ts.Name.Name)
		return nil, errors.Join(errs, err)
	}

	rec := &Record{Name: ts.Name, Spec: ts, Struct: st, File: file}

	for _, field := range st.Fields.List {
		c, err := p.classifyField(field)
		errs = errors.Join(errs, err)

		for _, name := range field.Names {
			rec.Fields = append(rec.Fields, &Field{Name: name, Type: field.Type, Cap: c})
		}
	}

	if errs != nil {
		return nil, errs
	}
	return rec, nil
}

// classifyField reads the markers of one struct field and classifies its
// capability. Duplicate markers are idempotent.
func (p *Parser) classifyField(field *ast.Field) (Capability, error) {
	c := CapNone
	var errs error

	for _, m := range markersIn(field.Doc, field.Comment) {
		p.consume(m)

		switch m.Name {
		case MarkerGet:
			c |= CapGet
		case MarkerSet:
			c |= CapSet
		case MarkerAccessors:
			err := codefmt.Errorf(p, field, "%s cannot mark a field", m)
			errs = errors.Join(errs, err)
		default:
			err := codefmt.Errorf(p, field, "unrecognized marker %s", m)
			errs = errors.Join(errs, err)
		}
	}

	if c != CapNone && len(field.Names) == 0 {
		err := codefmt.Errorf(p, field, "cannot mark embedded field %c", field.Type)
		errs = errors.Join(errs, err)
	}

	if errs != nil {
		return CapNone, errs
	}
	return c, nil
}

func (p *Parser) consume(m Marker) { p.consumed[m.comment] = true }
