package main

import "github.com/nfrund/lifeheroes/cmd/heroes-cli/cmd"

func main() {
	cmd.Execute()
}
