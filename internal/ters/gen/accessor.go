// Package gen synthesizes accessor method declarations for annotated records.
package gen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AdinAck/ters/internal/codefmt"
	"github.com/AdinAck/ters/internal/ters/parse"
)

// Kind distinguishes the two accessor shapes.
type Kind int

const (
	// Getter reads the live field value through a value receiver, so it is
	// callable on any handle.
	Getter Kind = iota

	// Setter overwrites the field through a pointer receiver, so it requires
	// an addressable, exclusive handle.
	Setter
)

// Accessor is one synthesized method declaration bound to a record field.
type Accessor struct {
	Kind  Kind
	Name  string // method name
	Field *parse.Field
}

// Synthesize produces the accessor declarations for the record. Declarations
// follow the source field order, and a field with both capabilities yields its
// getter before its setter. Fields with [parse.CapNone] yield nothing.
//
// The method names are fixed by rule: the getter takes the exported form of
// the field name, the setter prefixes Set. Two fields exporting to the same
// name are not deduplicated; the generated code fails to compile instead.
func Synthesize(rec *parse.Record) []Accessor {
	var accs []Accessor
	for _, f := range rec.Fields {
		if f.Cap.Has(parse.CapGet) {
			accs = append(accs, Accessor{Kind: Getter, Name: ExportName(f.Name.Name), Field: f})
		}
		if f.Cap.Has(parse.CapSet) {
			accs = append(accs, Accessor{Kind: Setter, Name: "Set" + ExportName(f.Name.Name), Field: f})
		}
	}
	return accs
}

// ExportName returns the exported form of a field name: the first rune
// upper-cased.
func ExportName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// WriteMethods writes the method declarations for the record's accessors in
// the order produced by [Synthesize].
func WriteMethods(w *codefmt.Writer, rec *parse.Record, accs []Accessor) {
	recv, recvType := receiver(rec)

	for _, a := range accs {
		typ := codefmt.RewriteImports(w, a.Field.Type)
		field := a.Field.Name.Name

		switch a.Kind {
		case Getter:
			w.Printf("func (%s %s) %s() %c {\n", recv, recvType, a.Name, typ)
			w.Printf("\treturn %s.%s\n", recv, field)
			w.Printf("}\n\n")

		case Setter:
			w.Printf("func (%s *%s) %s(%s %c) {\n", recv, recvType, a.Name, field, typ)
			w.Printf("\t%s.%s = %s\n", recv, field, field)
			w.Printf("}\n\n")
		}
	}
}

// receiver picks the receiver variable and type for the record's methods. The
// variable is derived from the record name and must not shadow a field or a
// type parameter. Type parameters are carried onto the receiver type.
func receiver(rec *parse.Record) (name, typ string) {
	ns := make(codefmt.NS)
	for _, f := range rec.Fields {
		ns.Reserve(f.Name.Name)
	}

	var params []string
	if tps := rec.TypeParams(); tps != nil {
		for _, tp := range tps.List {
			for _, id := range tp.Names {
				ns.Reserve(id.Name)
				params = append(params, id.Name)
			}
		}
	}

	r, _ := utf8.DecodeRuneInString(rec.Name.Name)
	name = ns.Name(string(unicode.ToLower(r)))

	typ = rec.Name.Name
	if len(params) != 0 {
		typ += "[" + strings.Join(params, ", ") + "]"
	}
	return name, typ
}
