//go:build ters

package embedded

type Base struct {
	id int
}

//ters:accessors
type User struct {
	//ters:get
	Base // want `cannot mark embedded field Base`

	//ters:set
	name string
}
