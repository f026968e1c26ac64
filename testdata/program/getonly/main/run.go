//go:build !ters

package main

import "fmt"

func main() {
	p := Point{x: 1, y: 2}
	fmt.Println(p.X(), p.Y())

	// Getters read the live value, not a snapshot.
	p.x = 10
	fmt.Println(p.X())
}
