package main

import (
	cmd "github.com/kerbaras/pulsesoul/cmd/pulsesoul"
)

func main() {
	cmd.Execute()
}
