//go:build ters

package main

//ters:accessors
type Box[T any] struct {
	//ters:get
	//ters:set
	value T
}
