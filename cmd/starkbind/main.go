package main

import "github.com/NethermindEth/starkbind/cmd/starkbind/cli"

func main() {
	cli.Execute()
}
