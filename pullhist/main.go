// Public domain.

package main

import "github.com/soniakeys/ctscripts/internal/phprog"

func main() {
	phprog.Main()
}
