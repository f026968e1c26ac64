package parse_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	tersparse "github.com/AdinAck/ters/internal/ters/parse"
)

// loadPackage type-checks the given sources as one package so that the parser
// can be exercised without the go tool.
func loadPackage(t *testing.T, srcs ...string) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	var syntax []*ast.File
	for i, src := range srcs {
		name := "fixture.go"
		if i > 0 {
			name = "fixture" + string(rune('1'+i)) + ".go"
		}
		file, err := parser.ParseFile(fset, name, src, parser.ParseComments|parser.SkipObjectResolution)
		require.NoError(t, err)
		syntax = append(syntax, file)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}
	conf := types.Config{Importer: importer.Default()}
	tpkg, err := conf.Check("example.com/fixture", fset, syntax, info)
	require.NoError(t, err)

	return &packages.Package{
		Name:      tpkg.Name(),
		PkgPath:   "example.com/fixture",
		Fset:      fset,
		Syntax:    syntax,
		Types:     tpkg,
		TypesInfo: info,
	}
}

func newParser(t *testing.T, srcs ...string) *tersparse.Parser {
	t.Helper()
	p, err := tersparse.New(loadPackage(t, srcs...))
	require.NoError(t, err)
	return p
}

func caps(t *testing.T, rec *tersparse.Record) map[string]tersparse.Capability {
	t.Helper()
	m := make(map[string]tersparse.Capability)
	for _, f := range rec.Fields {
		m[f.Name.Name] = f.Cap
	}
	return m
}

func TestClassify(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

//ters:accessors
type User struct {
	//ters:get
	name string

	//ters:set
	age int

	//ters:get
	//ters:set
	email string

	active bool
}
`)

	records, err := p.ParseRecords()
	require.NoError(t, err)
	require.Equal(t, 1, records.Len())

	for rec := range records.Range() {
		assert.Equal(t, "User", rec.Name.Name)
		assert.Equal(t, map[string]tersparse.Capability{
			"name":   tersparse.CapGet,
			"age":    tersparse.CapSet,
			"email":  tersparse.CapGet | tersparse.CapSet,
			"active": tersparse.CapNone,
		}, caps(t, rec))
	}

	require.NoError(t, p.Validate())
}

func TestClassifyIdempotent(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

//ters:accessors
type User struct {
	//ters:get
	//ters:get
	//ters:set
	//ters:get
	name string
}
`)

	records, err := p.ParseRecords()
	require.NoError(t, err)

	for rec := range records.Range() {
		assert.Equal(t, tersparse.CapGet|tersparse.CapSet, rec.Fields[0].Cap)
	}
}

func TestClassifyTrailingComment(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

//ters:accessors
type User struct {
	name string //ters:get
}
`)

	records, err := p.ParseRecords()
	require.NoError(t, err)

	for rec := range records.Range() {
		assert.Equal(t, tersparse.CapGet, rec.Fields[0].Cap)
	}
}

func TestClassifyMultipleNames(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

//ters:accessors
type Point struct {
	//ters:get
	//ters:set
	x, y int
}
`)

	records, err := p.ParseRecords()
	require.NoError(t, err)

	for rec := range records.Range() {
		require.Len(t, rec.Fields, 2)
		assert.Equal(t, "x", rec.Fields[0].Name.Name)
		assert.Equal(t, "y", rec.Fields[1].Name.Name)
		assert.Equal(t, tersparse.CapGet|tersparse.CapSet, rec.Fields[0].Cap)
		assert.Equal(t, tersparse.CapGet|tersparse.CapSet, rec.Fields[1].Cap)
	}
}

func TestFieldOrder(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

//ters:accessors
type User struct {
	c int //ters:get
	a int //ters:get
	b int //ters:get
}
`)

	records, err := p.ParseRecords()
	require.NoError(t, err)

	for rec := range records.Range() {
		var names []string
		for _, f := range rec.Fields {
			names = append(names, f.Name.Name)
		}
		assert.Equal(t, []string{"c", "a", "b"}, names)
	}
}

func TestRecordOrder(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

//ters:accessors
type B struct{}

//ters:accessors
type A struct{}
`)

	records, err := p.ParseRecords()
	require.NoError(t, err)
	require.Equal(t, 2, records.Len())

	var names []string
	for rec := range records.Range() {
		names = append(names, rec.Name.Name)
	}
	assert.Equal(t, []string{"B", "A"}, names)
}

func TestUnmarkedStructSkipped(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

type Plain struct {
	name string
}
`)

	records, err := p.ParseRecords()
	require.NoError(t, err)
	assert.Equal(t, 0, records.Len())
	require.NoError(t, p.Validate())
}

func TestUnrecognizedMarkerOnField(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

//ters:accessors
type User struct {
	//ters:bogus
	name string
}
`)

	_, err := p.ParseRecords()
	require.Error(t, err)
	assert.ErrorContains(t, err, "unrecognized marker //ters:bogus")
	assert.ErrorContains(t, err, "fixture.go:8:2")
}

func TestUnrecognizedMarkerFailsWholeRecord(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

//ters:accessors
type User struct {
	//ters:get
	name string

	//ters:bogus
	age int
}
`)

	records, err := p.ParseRecords()
	require.Error(t, err)

	// No record survives a definition error.
	assert.Equal(t, 0, records.Len())
}

func TestAccessorsOnNonStruct(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

//ters:accessors
type Level int
`)

	_, err := p.ParseRecords()
	require.Error(t, err)
	assert.ErrorContains(t, err, "must mark a struct type")
	assert.ErrorContains(t, err, "Level is not a struct")
}

func TestFieldMarkerOnType(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

//ters:get
//ters:accessors
type User struct {
	name string
}
`)

	_, err := p.ParseRecords()
	require.Error(t, err)
	assert.ErrorContains(t, err, "//ters:get must mark a struct field")
}

func TestAccessorsOnFieldRejected(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

//ters:accessors
type User struct {
	//ters:accessors
	name string
}
`)

	_, err := p.ParseRecords()
	require.Error(t, err)
	assert.ErrorContains(t, err, "//ters:accessors cannot mark a field")
}

func TestEmbeddedFieldRejected(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

type Base struct{}

//ters:accessors
type User struct {
	//ters:get
	Base
}
`)

	_, err := p.ParseRecords()
	require.Error(t, err)
	assert.ErrorContains(t, err, "cannot mark embedded field Base")
}

func TestValidateStrayFieldMarker(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

type Plain struct {
	//ters:get
	name string
}
`)

	_, err := p.ParseRecords()
	require.NoError(t, err)

	err = p.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "//ters:get must mark a named field of a //ters:accessors struct")
}

func TestValidateMissingConstraint(t *testing.T) {
	p := newParser(t, `package fixture

//ters:accessors
type User struct {
	//ters:get
	name string
}
`)

	_, err := p.ParseRecords()
	require.NoError(t, err)

	err = p.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, `file must have "//go:build ters" constraint`)
}

func TestValidateCleanAfterParse(t *testing.T) {
	p := newParser(t, `//go:build ters

package fixture

//ters:accessors
type User struct {
	//ters:get
	name string
}
`)

	_, err := p.ParseRecords()
	require.NoError(t, err)
	require.NoError(t, p.Validate())
}

func TestCapabilityString(t *testing.T) {
	assert.Equal(t, "none", tersparse.CapNone.String())
	assert.Equal(t, "get", tersparse.CapGet.String())
	assert.Equal(t, "set", tersparse.CapSet.String())
	assert.Equal(t, "get+set", (tersparse.CapGet | tersparse.CapSet).String())
}
