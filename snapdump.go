package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/kettleson/satchel/satchel/snapshot"
)

// Quick and dirty snapshot dumper, handy when a snapshot looks off and
// the stow tool is too polite about it.

func main() {

	if len(os.Args) < 2 {
		fmt.Println("usage:", os.Args[0], " [snapshot]")
		os.Exit(1)
	}

	fileh, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Println("failed to open", os.Args[1], err)
		os.Exit(1)
	}
	defer fileh.Close()

	a, err := snapshot.Read(fileh)
	if err != nil {
		fmt.Println("failed to read snapshot:", err)
		os.Exit(1)
	}

	spew.Dump(a.Stats())
	spew.Dump(a.Entries())
}
