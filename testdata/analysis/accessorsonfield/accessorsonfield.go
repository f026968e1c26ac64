//go:build ters

package accessorsonfield

//ters:accessors
type User struct {
	//ters:accessors
	name string // want `//ters:accessors cannot mark a field`
}
