//go:build ters

package main

import "strings"

//ters:accessors
type Post struct {
	//ters:get
	//ters:set
	title string
}

func normalizeTitle(s string) string {
	return strings.ToUpper(s)
}
