package main

import "github.com/marinfc/tournament-directory/internal/cli"

func main() {
	cli.Execute()
}
