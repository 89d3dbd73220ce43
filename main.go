package main

import "github.com/stripbot/stripbot/cmd"

func main() {
	cmd.Execute()
}
