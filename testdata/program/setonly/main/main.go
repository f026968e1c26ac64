//go:build ters

package main

//ters:accessors
type Counter struct {
	//ters:set
	n int
}
