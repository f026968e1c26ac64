//go:build ters

package unrecognizedmarker

//ters:accessors
type User struct {
	//ters:bogus
	name string // want `unrecognized marker //ters:bogus`

	//ters:get
	age int
}
