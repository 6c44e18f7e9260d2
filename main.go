package main

import "github.com/benmartel/emissary/cmd"

func main() {
	cmd.Execute()
}
