//go:build ters

package fieldmarkerontype

//ters:accessors
//ters:get
type User struct { // want `//ters:get must mark a struct field`
	name string
}
