package main

//ters:accessors
type User struct {
	//ters:get
	name string
}
