package main

import "github.com/avosch/rollbook/cmd"

func main() {
	cmd.Execute()
}
