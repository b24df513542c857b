// Public domain.

package main

import "github.com/soniakeys/ctscripts/internal/emprog"

func main() {
	emprog.Main()
}
