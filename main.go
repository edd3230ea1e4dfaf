package main

import "github.com/p25go/fec/cmd"

func main() {
	cmd.Execute()
}
