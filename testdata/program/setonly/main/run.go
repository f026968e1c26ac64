//go:build !ters

package main

import "fmt"

func main() {
	var c Counter
	c.SetN(31)
	fmt.Println(c.n)
}
