//go:build ters

package main

//ters:get
func name() string { return "" }
