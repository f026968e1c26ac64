//go:build ters

package main

import "time"

// User is an account holder. Identity fields are read-only; profile fields
// may be replaced after construction.
//
//ters:accessors
type User struct {
	//ters:get
	id int64

	//ters:get
	createdAt time.Time

	//ters:get
	//ters:set
	name string

	//ters:get
	//ters:set
	email string
}

// NewUser returns a User stamped with its creation time.
func NewUser(id int64, name, email string) User {
	return User{id: id, createdAt: time.Now(), name: name, email: email}
}
