package main

import "tikgrab/cmd"

func main() {
	cmd.Execute()
}
