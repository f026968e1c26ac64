//go:build !ters

package main

import "fmt"

func main() {
	u := User{name: "amelia"}
	fmt.Println(u.Name())

	u.SetName("blair")
	fmt.Println(u.Name())
}
