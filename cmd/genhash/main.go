// genhash prints the bcrypt hash of a password, for seeding
// employee_passwords by hand.
package main

import (
	"fmt"
	"os"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/security"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>")
		os.Exit(2)
	}
	h, err := security.HashPassword(os.Args[1], security.DefaultBcryptCost)
	if err != nil {
		panic(err)
	}
	fmt.Println(h)
}
