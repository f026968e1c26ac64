//go:build !ters

package main

import "fmt"

func main() {
	b := Box[int]{value: 42}
	fmt.Println(b.Value())

	b.SetValue(31)
	fmt.Println(b.Value())

	var s Box[string]
	s.SetValue("hi")
	fmt.Println(s.Value())
}
