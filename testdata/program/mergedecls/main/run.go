//go:build !ters

package main

import "fmt"

func main() {
	var p Post
	p.SetTitle(normalizeTitle("hello"))
	fmt.Println(p.Title())
}
