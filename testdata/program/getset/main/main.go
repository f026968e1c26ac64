//go:build ters

package main

//ters:accessors
type User struct {
	//ters:get
	//ters:set
	name string
}
