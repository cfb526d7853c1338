package main

import "github.com/mindwell/companion/cmd"

func main() {
	cmd.Execute()
}
