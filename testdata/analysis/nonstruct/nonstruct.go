//go:build ters

package nonstruct

//ters:accessors
type Celsius float64 // want `//ters:accessors must mark a struct type; Celsius is not a struct`
