// One-off: go run scripts/genhash.go
package main

import (
	"fmt"
	"os"

	"Bookmarker/internal/password"
)

func main() {
	pass := "admin"
	if len(os.Args) > 1 {
		pass = os.Args[1]
	}
	h, err := password.Hash(pass)
	if err != nil {
		panic(err)
	}
	fmt.Print(h)
}
