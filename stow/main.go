package main

import (
	"github.com/kettleson/satchel/stow/cmd"
)

func main() {
	cmd.Execute()
}
