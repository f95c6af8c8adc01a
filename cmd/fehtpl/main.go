package main

import (
	"os"

	"github.com/loopcontext/fehtpl/internal/prompt"
)

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	a.interactive = prompt.Interactive(os.Stdin)
	os.Exit(a.execute(os.Args[1:]))
}
