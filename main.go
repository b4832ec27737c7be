package main

import "reading-tracker/cmd"

func main() {
	cmd.Execute()
}
