// genhash prints the bcrypt hash of a password using BCRYPT_COST.
// Usage: go run ./cmd/genhash <password>
package main

import (
	"fmt"
	"os"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/auth"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/config"
)

func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	h, err := auth.NewPasswordHasher(cfg.BcryptCost).Hash(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(h)
}
