//go:build ters

package main

//ters:accessors
type Point struct {
	//ters:get
	x, y int
}
