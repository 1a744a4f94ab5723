package main

import "github.com/cursor-reset/cursor-reset/cmd"

func main() {
	cmd.Execute()
}
