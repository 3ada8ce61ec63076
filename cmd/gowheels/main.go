package main

import "github.com/example/gowheels/cmd"

func main() {
	cmd.Execute()
}
