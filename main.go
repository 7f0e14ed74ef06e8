package main

import "github.com/tabsh/tabsh/cmd"

func main() {
	cmd.Execute()
}
