package main

import "linkmind/cmd"

func main() {
	cmd.Execute()
}
