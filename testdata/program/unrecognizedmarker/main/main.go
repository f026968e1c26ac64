//go:build ters

package main

//ters:accessors
type User struct {
	//ters:bogus
	name string
}
