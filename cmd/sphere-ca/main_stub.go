//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of sphere-ca requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/sphere-ca` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal front end use ./cmd/sphere-ca-term instead.")
	os.Exit(2)
}
