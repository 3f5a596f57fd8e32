package main

import "github.com/morsuning/rust-code-guide-sub000/guide"

// Runs every tutorial in order.
//
// Run:
//
//	go run .
func main() {
	logger := guide.DefaultLogger()

	if err := guide.Run(guide.Config{Logger: logger}, guide.Tutorials()); err != nil {
		logger.Fatal("tutorial run failed", "err", err)
	}
}
