// Package ters generates getter and setter methods for annotated struct
// fields.
//
// Go has no attribute macros, so ters works as a pre-build source-to-source
// generator. Struct definitions that want generated accessors live in files
// guarded by a build constraint:
//
//	//go:build ters
//
// Those files are excluded from regular builds. The generator consumes them
// and emits ters_gen.go into the same package, carrying the struct definitions
// with all markers stripped plus the synthesized accessor methods. Code that
// calls the accessors lives in files guarded by the opposite constraint,
// //go:build !ters, so that the package type-checks both with and without the
// tag.
//
// A struct opts in with the //ters:accessors marker. Fields request
// capabilities with //ters:get and //ters:set, independently or together:
//
//	//ters:accessors
//	type User struct {
//		//ters:get
//		name string
//
//		//ters:get
//		//ters:set
//		email string
//
//		age int
//	}
//
// After running the ters command:
//
//	go run github.com/AdinAck/ters/cmd/ters
//
// the generated ters_gen.go contains the User definition without marker
// comments, followed by:
//
//	func (u User) Name() string { return u.name }
//
//	func (u User) Email() string { return u.email }
//
//	func (u *User) SetEmail(email string) { u.email = email }
//
// A getter is named after the exported form of its field and reads the live
// field value through a value receiver, so it is callable on any handle. A
// setter prefixes Set, takes one parameter of the field's type, and overwrites
// the field through a pointer receiver, so it requires an addressable,
// exclusive handle. For a field carrying both markers the getter is emitted
// before the setter, and fields keep their source order.
//
// Unmarked fields get no accessors at all. Repeating a marker on one field has
// no effect beyond the first occurrence. Type parameters of generic structs
// are carried onto the receivers.
//
// Any marker other than accessors, get, or set is a definition error. So is
// //ters:accessors on a non-struct type, a field marker outside an annotated
// struct, or a marker in a file missing the ters build constraint. Every error
// is reported with its source position and no output is produced for the
// package.
//
// Two fields whose names export to the same identifier, or an exported field
// whose getter would share its own name, are not detected by ters; the Go
// compiler rejects the generated code instead.
package ters
