//go:build ters

package main

//ters:accessors
type Celsius float64
